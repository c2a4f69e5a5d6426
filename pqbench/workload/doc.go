// Package workload generates synthetic but empirically-grounded messaging
// workloads for the benchmark harness.
//
// It models two independent axes of a messaging system:
//   - what gets sent: per-scenario message-type and size distributions (MessageGenerator)
//   - when it gets sent: stateful traffic cadence patterns (TrafficGenerator)
//
// Both generators take an explicit *rand.Rand so experiments and tests can seed
// them deterministically, and the traffic side works against an injectable
// Clock rather than ambient wall-clock reads.
package workload
