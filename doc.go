// Package somgo provides an embeddable Self-Organizing Map (SOM) engine for Go.
//
// A Map is a Width x Height lattice of prototype vectors. Training pulls the
// prototypes toward the inputs so that similar inputs land on nearby cells.
// The engine performs one training update per call; epochs, data loading and
// stopping criteria belong to the caller.
//
// # Quick Start
//
//	m := somgo.New(8, 8, 3, 4.0, 1000, 0.5) // 8x8 grid of RGB prototypes
//	defer m.Close()
//
//	for _, v := range samples {
//	    m.TrainingStep(v)
//	}
//
//	x, y, d := m.FindBestMatch([]float32{1, 0, 0})
//
// # Update Rule
//
// Each TrainingStep finds the best matching unit (BMU) and moves every
// prototype w toward the input v:
//
//	tExp  = exp(-step / TotalSteps)        (DefaultTExpMin once step >= TotalSteps)
//	sigma = Radius * tExp
//	rate  = LearningRate * tExp
//	w    += rate * exp(-d² / (2*sigma²)) * (v - w)
//
// where d is the lattice distance between the cell and the BMU.
// All arithmetic is single precision.
//
// # Injected Capabilities
//
//   - WithRandomSource: uniform [0, 1) draws for Reset
//   - WithAllocator: weight buffer allocation and release
//   - WithFaultHandler: precondition violations (panics by default)
//   - WithLogger / WithMetricsCollector: observability
//
// # Concurrency
//
// A Map is not internally synchronized. Callers must serialize access,
// including reads of slices returned by Prototype and Weights.
package somgo
