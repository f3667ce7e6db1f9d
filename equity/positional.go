package equity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/haya28/othello/board"
)

// Weights are the positional multipliers applied per cell class. They
// must all be positive; Evaluate's antisymmetry under a color swap only
// depends on the weights being color-blind, which they are by shape.
type Weights struct {
	Corner int `yaml:"corner"`
	Edge   int `yaml:"edge"`
	Inner  int `yaml:"inner"`
}

// DefaultWeights returns the standard corner/edge/inner multipliers.
func DefaultWeights() Weights {
	return Weights{Corner: 4, Edge: 2, Inner: 1}
}

// LoadWeights reads a Weights yaml file. Missing keys fall back to the
// defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err = yaml.Unmarshal(data, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("parsing weights file %v: %w", path, err)
	}
	if w.Corner <= 0 || w.Edge <= 0 || w.Inner <= 0 {
		return DefaultWeights(), fmt.Errorf("weights must be positive: %+v", w)
	}
	return w, nil
}

// PositionalCalculator scores a board as the weight-multiplied sum of its
// signed cell values, so corners and edges count for more than interior
// cells.
type PositionalCalculator struct {
	weights Weights
}

func NewPositionalCalculator(w Weights) *PositionalCalculator {
	return &PositionalCalculator{weights: w}
}

func isCorner(row, col int) bool {
	return (row == 0 || row == board.Dim-1) && (col == 0 || col == board.Dim-1)
}

func isEdge(row, col int) bool {
	return row == 0 || row == board.Dim-1 || col == 0 || col == board.Dim-1
}

func (pc *PositionalCalculator) Evaluate(b *board.Board) int {
	value := 0
	for i := 0; i < board.Dim; i++ {
		for j := 0; j < board.Dim; j++ {
			mult := pc.weights.Inner
			if isCorner(i, j) {
				mult = pc.weights.Corner
			} else if isEdge(i, j) {
				mult = pc.weights.Edge
			}
			value += int(b.Get(i, j)) * mult
		}
	}
	return value
}
