// Package reconcile provides a generic system for reconciling two sources of
// truth about the same set of entities: a manifest that claims what exists and
// a raw listing of what is physically stored.
//
// # Architecture
//
// The reconcile system consists of two components:
//
// 1. Engine: builds the union of keys from both sources, records presence per
// key and derives the orphan set (listed but not claimed).
//
// 2. Adapter: model-specific implementations that expose the manifest keys and
// listing names, and decide which listing names are structural (part of the
// storage format) rather than entities.
//
// The engine never fails. Inconsistency between the sources is data, reported
// through the plan and its summary, and callers decide whether to warn.
//
// # Usage Example
//
//	plan := reconcile.ReconcileAll(adapter)
//	for _, orphan := range plan.Orphans {
//	    // orphan.Name is the raw listing name
//	}
package reconcile
