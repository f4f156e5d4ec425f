// Package wsframe implements the framing layer of RFC 6455: encoding
// application messages into masked wire frames, decoding incoming bytes
// into validated frames, reassembling fragmented messages, and enforcing
// the protocol's structural and payload-content invariants.
//
// The package does not perform I/O. Frames are read through a ByteSource
// and written as plain []byte to be handed to whatever transport the
// caller has (TCP, TLS, an in-memory pipe for tests). The HTTP upgrade
// handshake, ping/pong scheduling, close-handshake orchestration, and a
// public connect/send/recv client surface are all layered on top of this
// package and are out of its scope.
package wsframe
