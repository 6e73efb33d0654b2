package somgo

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/somgo/distance"
)

// Map is a Self-Organizing Map: a Width x Height lattice of prototype vectors
// of length VectorLen stored in one contiguous float32 buffer.
//
// A Map is not internally synchronized; external locking is required for
// concurrent use. Create maps with New; the zero value is not usable.
type Map struct {
	id uuid.UUID

	width     int
	height    int
	vectorLen int

	radius       float32
	totalSteps   float32
	learningRate float32

	step    uint64
	weights []float32
	closed  bool

	opts   options
	logger *Logger
}

// New creates a map with the given lattice shape and training parameters and
// fills it with random weights.
//
// width, height and vectorLen must be at least 1. A violation is passed to the
// fault handler (PanicFaultHandler unless WithFaultHandler is given); if the
// handler returns, New returns nil.
func New(width, height, vectorLen int, radius, totalSteps, learningRate float32, optFns ...Option) *Map {
	o := applyOptions(optFns)

	m := &Map{
		id:           uuid.New(),
		width:        width,
		height:       height,
		vectorLen:    vectorLen,
		radius:       radius,
		totalSteps:   totalSteps,
		learningRate: learningRate,
		opts:         o,
	}
	m.logger = o.logger.WithMapID(m.id).WithGrid(width, height, vectorLen)

	if width < 1 || height < 1 || vectorLen < 1 {
		m.fault(precondition("New", ErrInvalidDimension, "width=%d height=%d vector_len=%d", width, height, vectorLen))
		return nil
	}

	cells := width * height
	if cells/height != width || cells*vectorLen/vectorLen != cells {
		m.fault(precondition("New", ErrInvalidDimension, "width=%d height=%d vector_len=%d overflows int", width, height, vectorLen))
		return nil
	}

	n := cells * vectorLen
	m.weights = o.allocator.Alloc(n)
	if len(m.weights) != n {
		m.fault(precondition("New", ErrAllocation, "want %d elements, got %d", n, len(m.weights)))
		return nil
	}

	if o.stride == StrideHeight && width != height {
		m.logger.Warn("height stride on a rectangular grid, some prototypes are not addressable",
			"stride", o.stride.String(),
		)
	}

	m.logger.LogCreate(radius, totalSteps, learningRate, o.stride)
	m.Reset()

	return m
}

// ID returns the identifier attached to this map's log records.
func (m *Map) ID() uuid.UUID { return m.id }

// Width returns the number of lattice columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of lattice rows.
func (m *Map) Height() int { return m.height }

// VectorLen returns the dimensionality of every prototype.
func (m *Map) VectorLen() int { return m.vectorLen }

// Steps returns the number of training steps since construction or the last Reset.
func (m *Map) Steps() uint64 { return m.step }

// Reset overwrites every weight with a fresh draw from the random source and
// rewinds the step counter to zero.
func (m *Map) Reset() {
	if !m.ready("Reset") {
		return
	}

	start := time.Now()
	for i := range m.weights {
		m.weights[i] = m.opts.random.Float32()
	}
	m.step = 0

	d := time.Since(start)
	m.opts.metricsCollector.RecordReset(d)
	m.logger.LogReset(len(m.weights), d)
}

// Prototype returns the mutable weights of the cell at (x, y).
//
// The slice aliases the map's buffer and is capped at VectorLen, so appending
// to it never overwrites a neighbor. It must not be used after Close.
// Out-of-range coordinates are a precondition violation.
func (m *Map) Prototype(x, y int) []float32 {
	if !m.ready("Prototype") {
		return nil
	}

	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		m.fault(precondition("Prototype", ErrOutOfRange, "x=%d y=%d grid=%dx%d", x, y, m.width, m.height))
		return nil
	}

	off, ok := m.offset(x, y)
	if !ok {
		m.fault(precondition("Prototype", ErrOutOfRange, "x=%d y=%d lies beyond the buffer with %s stride", x, y, m.opts.stride))
		return nil
	}

	return m.weights[off : off+m.vectorLen : off+m.vectorLen]
}

// Weights returns the whole weight buffer in scan order: cell (x, y) occupies
// [(y*Width+x)*VectorLen, (y*Width+x+1)*VectorLen). The slice aliases the map.
func (m *Map) Weights() []float32 {
	if !m.ready("Weights") {
		return nil
	}
	return m.weights[:len(m.weights):len(m.weights)]
}

// FindBestMatch returns the lattice coordinates of the prototype closest to
// vector and its squared Euclidean distance.
//
// Cells are scanned row by row; among equal distances the first one scanned
// wins. vector must hold VectorLen values (not checked).
func (m *Map) FindBestMatch(vector []float32) (x, y int, distSq float32) {
	if !m.ready("FindBestMatch") {
		return 0, 0, 0
	}

	start := time.Now()
	x, y, distSq = m.bestMatch(vector)
	m.opts.metricsCollector.RecordFindBestMatch(time.Since(start), distSq)

	return x, y, distSq
}

// TrainingStep pulls every prototype toward vector, weighted by a Gaussian
// neighborhood around the best matching unit, then advances the step counter.
//
// Radius and learning rate decay by exp(-step/TotalSteps); from TotalSteps on
// the decay factor is pinned to the configured floor.
// vector must hold VectorLen values (not checked).
func (m *Map) TrainingStep(vector []float32) {
	if !m.ready("TrainingStep") {
		return
	}

	start := time.Now()

	winX, winY, distSq := m.FindBestMatch(vector)

	tExp := m.decay(m.step)
	sigma := m.radius * tExp
	rate := m.learningRate * tExp
	sigmaDist := float32(1 / (2 * float64(sigma) * float64(sigma)))

	off := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			effective := rate * neighborhood(distance.GridSquared(winX, winY, x, y), sigmaDist)

			proto := m.weights[off : off+m.vectorLen]
			for i := range proto {
				proto[i] += effective * (vector[i] - proto[i])
			}
			off += m.vectorLen
		}
	}

	m.logger.LogTrainingStep(m.step, winX, winY, distSq, tExp)
	m.step++

	m.opts.metricsCollector.RecordTrainingStep(time.Since(start), tExp)
}

// DecayFactor returns the factor the next TrainingStep will scale the radius
// and learning rate with.
func (m *Map) DecayFactor() float32 {
	if !m.ready("DecayFactor") {
		return 0
	}
	return m.decay(m.step)
}

func (m *Map) decay(step uint64) float32 {
	t := float32(step)
	if t < m.totalSteps {
		return float32(math.Exp(float64(-t / m.totalSteps)))
	}
	return m.opts.tExpMin
}

// neighborhood evaluates the Gaussian kernel exp(-distSq*sigmaDist).
// The winner always gets 1, even when a zero radius makes sigmaDist infinite.
func neighborhood(distSq, sigmaDist float32) float32 {
	if distSq == 0 {
		return 1
	}
	return float32(math.Exp(float64(-distSq * sigmaDist)))
}

func (m *Map) bestMatch(vector []float32) (int, int, float32) {
	idx, d := distance.Nearest(m.weights, m.vectorLen, m.width*m.height, vector)
	if idx < 0 {
		return 0, 0, d
	}
	return idx % m.width, idx / m.width, d
}

// offset locates cell (x, y) under the configured stride and reports whether
// the whole prototype fits inside the buffer.
func (m *Map) offset(x, y int) (int, bool) {
	rowStride := m.height
	if m.opts.stride == StrideWidth {
		rowStride = m.width
	}

	off := (x + y*rowStride) * m.vectorLen

	return off, off+m.vectorLen <= len(m.weights)
}

func (m *Map) ready(op string) bool {
	switch {
	case m == nil || m.opts.allocator == nil:
		m.fault(precondition(op, ErrNotInitialized, ""))
		return false
	case m.closed:
		m.fault(precondition(op, ErrClosed, ""))
		return false
	}
	return true
}

func (m *Map) fault(err error) {
	if m == nil || m.opts.faultHandler == nil {
		PanicFaultHandler(err)
		return
	}

	m.logger.LogFault(err)
	m.opts.metricsCollector.RecordFault(err)
	m.opts.faultHandler(err)
}
