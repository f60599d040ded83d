// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/models"
)

// Node is one node of a decision tree in flattened array form. Internal
// nodes route on Feature <= Threshold; leaves carry per-class sample counts.
type Node struct {
	// Feature is the index into the feature vector this node splits on.
	// -1 marks a leaf.
	Feature int `json:"feature"`

	// Threshold is the split value: samples with feature value <= Threshold
	// go left, the rest go right.
	Threshold float64 `json:"threshold"`

	// Left and Right are indices into the tree's node slice. Unused on leaves.
	Left  int `json:"left"`
	Right int `json:"right"`

	// Counts holds the training sample counts per class at a leaf,
	// index 0 legitimate, index 1 phishing. Unused on internal nodes.
	Counts [2]float64 `json:"counts"`
}

// Tree is a single decision tree. Node 0 is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a random-forest classifier deserialized from a JSON artifact.
// Predict takes the majority vote over all trees; PredictProba averages the
// leaf class distributions. All state is read-only after Load, so a single
// Forest is safe for concurrent use across requests.
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// Load reads and validates a forest artifact from path.
//
// Returns:
//   - ErrArtifactNotFound when the file cannot be read.
//   - ErrMalformedArtifact when decoding fails or the artifact has no trees.
//   - ErrFeatureCountMismatch when the artifact was trained on a different
//     feature width than [models.FeatureCount].
func Load(path string, log *logger.Logger) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("error reading classifier artifact")
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
	}

	var forest Forest
	if err := json.Unmarshal(data, &forest); err != nil {
		log.Err(err).Str("path", path).Msg("error decoding classifier artifact")
		return nil, fmt.Errorf("%w: %w", ErrMalformedArtifact, err)
	}

	if err := forest.validate(); err != nil {
		log.Err(err).Str("path", path).Msg("classifier artifact failed validation")
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("trees", len(forest.Trees)).
		Int("features", forest.NumFeatures).
		Msg("classifier artifact loaded")

	return &forest, nil
}

func (f *Forest) validate() error {
	if f.NumFeatures != models.FeatureCount {
		return fmt.Errorf("%w: artifact has %d, encoder produces %d",
			ErrFeatureCountMismatch, f.NumFeatures, models.FeatureCount)
	}

	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrMalformedArtifact)
	}

	for i, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d has no nodes", ErrMalformedArtifact, i)
		}
		for j, node := range tree.Nodes {
			if node.Feature < 0 {
				continue
			}
			if node.Feature >= f.NumFeatures {
				return fmt.Errorf("%w: tree %d node %d splits on feature %d",
					ErrMalformedArtifact, i, j, node.Feature)
			}
			if node.Left < 0 || node.Left >= len(tree.Nodes) ||
				node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("%w: tree %d node %d has out-of-range children",
					ErrMalformedArtifact, i, j)
			}
		}
	}

	return nil
}

// Predict implements [Classifier] by majority vote over all trees.
// Ties break toward class 1 (phishing), the conservative direction for a
// security classifier.
func (f *Forest) Predict(vec models.FeatureVector) (int, error) {
	proba, err := f.PredictProba(vec)
	if err != nil {
		return 0, err
	}

	if proba[1] >= proba[0] {
		return 1, nil
	}
	return 0, nil
}

// PredictProba implements [ProbabilityClassifier]: each tree contributes its
// reached leaf's normalized class distribution, and the forest averages the
// contributions. The result always sums to 1.0.
func (f *Forest) PredictProba(vec models.FeatureVector) ([2]float64, error) {
	values := vec.Values()

	var sum [2]float64
	for i := range f.Trees {
		leaf, err := f.Trees[i].walk(values)
		if err != nil {
			return [2]float64{}, fmt.Errorf("tree %d: %w", i, err)
		}

		total := leaf.Counts[0] + leaf.Counts[1]
		if total == 0 {
			// Empty leaf counts as an abstaining vote split evenly.
			sum[0] += 0.5
			sum[1] += 0.5
			continue
		}

		sum[0] += leaf.Counts[0] / total
		sum[1] += leaf.Counts[1] / total
	}

	n := float64(len(f.Trees))
	return [2]float64{sum[0] / n, sum[1] / n}, nil
}

// walk descends from the root to a leaf following the split rules.
// The visit budget of len(Nodes) steps guards against cycles in a damaged
// artifact; exceeding it returns ErrCorruptTree instead of looping forever.
func (t *Tree) walk(values [models.FeatureCount]float64) (*Node, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := &t.Nodes[idx]
		if node.Feature < 0 {
			return node, nil
		}

		if values[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}

	return nil, ErrCorruptTree
}
