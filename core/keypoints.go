// Package core implements the pose scoring and feedback engine.
// Every function in this package is a pure, reentrant transformation of its
// inputs: no locks, no shared state, safe from any goroutine.
package core

import "github.com/huangsam/posecoach/schema"

// BuildKeypointSet normalizes raw detector output into a name-indexed
// lookup, dropping any keypoint at or below the confidence floor or with an
// unset name. Empty input yields an empty set.
func BuildKeypointSet(raw []schema.Keypoint, minConfidence float64) schema.KeypointSet {
	set := make(schema.KeypointSet, len(raw))
	for _, kp := range raw {
		if kp.Name == "" || kp.Confidence <= minConfidence {
			continue
		}
		set[kp.Name] = kp
	}
	return set
}
