package model

// Initialization holds the scalar run parameters of a scenario.
type Initialization struct {
	Iterations int
	TimeStep   float64
}
