// Package strassen is the root of a small toolkit for multiplying square
// matrices over Z/pZ with Strassen's algorithm, one recursion level of which
// is spread across a group of seven cooperating processes.
//
// Everything is organized under these subpackages:
//
//	ring/      — Z/pZ arithmetic on uint64 residues, overflow-free up to p = 2^63-1
//	matrix/    — Dense square matrices carrying their ring; Split/Join, Add/Sub,
//	             the definitional Product, a binary wire codec, seeded generators
//	strassen/  — the seven-product task table and the sequential recursion
//	cluster/   — ranked process groups: in-memory and TCP star transports
//	protocol/  — coordinator and worker state machines, RunLocal
//	config/    — YAML + STRASSEN_* environment configuration
//	logger/    — zap loggers with lumberjack file rotation
//	cmd/strassen — the command: run, seq, coordinator, worker
//
// Quick example:
//
//	z13 := ring.MustNew(13)
//	a, b, _ := matrix.RandomPair(z13, 4, 2024)
//	c, _ := protocol.RunLocal(ctx, a, b) // six workers + coordinator in-process
//	seq, _ := strassen.MultiplySeq(a, b, z13)
//	fmt.Println(c.Equal(seq)) // true
//
// Across machines:
//
//	strassen coordinator --address :7070 --order 256 --verify
//	strassen worker --address host:7070 --rank 1   # ... through --rank 6
package strassen
