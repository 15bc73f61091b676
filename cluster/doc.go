// Package cluster provides the process group the distributed multiplication
// runs on: a fixed set of ranked participants exchanging tagged envelopes.
//
// Two transports implement the same Transport interface:
//
//   - LocalNetwork, an in-memory group where every participant is a goroutine.
//     Each Send serializes the envelope with encoding/gob, so participants
//     never share matrix buffers, exactly as if they lived in separate
//     processes.
//   - A TCP star: the coordinator Listens and Accepts size-1 workers, each
//     worker Dials in and announces its rank. Envelopes travel as a gob
//     stream over buffered connections.
//
// Recv matches on (sender, tag). Messages that arrive ahead of the receive
// that wants them are buffered per sender, so delivery order between
// different tags is never assumed.
package cluster
