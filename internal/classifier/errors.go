// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package classifier

import "errors"

var (
	// ErrArtifactNotFound is returned by Load when the artifact file does
	// not exist or cannot be read.
	ErrArtifactNotFound = errors.New("classifier artifact not found")

	// ErrMalformedArtifact is returned by Load when the artifact cannot be
	// decoded or fails structural validation.
	ErrMalformedArtifact = errors.New("malformed classifier artifact")

	// ErrFeatureCountMismatch is returned by Load when the artifact was
	// trained on a different feature vector width than this binary encodes.
	ErrFeatureCountMismatch = errors.New("artifact feature count mismatch")

	// ErrCorruptTree is returned during inference when a tree walk leaves
	// the node table, which indicates a damaged artifact.
	ErrCorruptTree = errors.New("corrupt decision tree in artifact")
)
