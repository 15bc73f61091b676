// SPDX-License-Identifier: MIT

package cluster

import (
	"bufio"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// handshakeTimeout bounds how long an accepted connection may take to introduce itself.
const handshakeTimeout = 10 * time.Second

// hello is the first message a worker sends after connecting.
type hello struct {
	Rank int
	Size int
}

// welcome is the coordinator's reply; an empty Reject means accepted.
type welcome struct {
	Reject string
}

// Option configures a TCP transport.
type Option func(*tcpOptions)

type tcpOptions struct {
	log *zap.Logger
}

// WithLogger sets the logger used for connection lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(o *tcpOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) tcpOptions {
	o := tcpOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// link is one buffered gob stream to a peer.
type link struct {
	rank int
	conn net.Conn
	wmu  sync.Mutex // serializes writers
	bw   *bufio.Writer
	enc  *gob.Encoder
	dec  *gob.Decoder
}

func newLink(rank int, conn net.Conn) *link {
	bw := bufio.NewWriter(conn)
	return &link{
		rank: rank,
		conn: conn,
		bw:   bw,
		enc:  gob.NewEncoder(bw),
		dec:  gob.NewDecoder(bufio.NewReader(conn)),
	}
}

// write encodes v and flushes, honoring ctx's deadline if any.
func (l *link) write(ctx context.Context, v any) error {
	l.wmu.Lock()
	defer l.wmu.Unlock()
	if dl, ok := ctx.Deadline(); ok {
		_ = l.conn.SetWriteDeadline(dl)
		defer l.conn.SetWriteDeadline(time.Time{})
	}
	if err := l.enc.Encode(v); err != nil {
		return err
	}

	return l.bw.Flush()
}

// Listener is the coordinator side of a TCP star before the group is complete.
type Listener struct {
	ln   net.Listener
	size int
	opts tcpOptions
}

// Listen opens addr for a star of size participants (the caller is rank 0).
// Errors: ErrTopology when size < 1, or any net.Listen error.
func Listen(ctx context.Context, addr string, size int, opts ...Option) (*Listener, error) {
	if size < 1 {
		return nil, fmt.Errorf("Listen(size=%d): %w", size, ErrTopology)
	}
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("Listen(%s): %w", addr, err)
	}

	return &Listener{ln: ln, size: size, opts: buildOptions(opts)}, nil
}

// Addr returns the bound address, useful when listening on port 0.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Close releases the listening socket.
func (l *Listener) Close() error { return l.ln.Close() }

// Accept waits until every worker rank 1..size-1 has connected and returns
// the coordinator's transport. The listening socket is closed on return.
// Errors: ErrTopology for a duplicate, out-of-range or mis-sized hello.
func (l *Listener) Accept(ctx context.Context) (*TCPTransport, error) {
	defer l.ln.Close()

	stop := context.AfterFunc(ctx, func() { _ = l.ln.Close() })
	defer stop()

	links := make(map[int]*link, l.size-1)
	fail := func(err error) (*TCPTransport, error) {
		for _, lk := range links {
			_ = lk.conn.Close()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, fmt.Errorf("Accept: %w", err)
	}

	for len(links) < l.size-1 {
		conn, err := l.ln.Accept()
		if err != nil {
			return fail(err)
		}
		lk, err := l.handshake(conn, links)
		if err != nil {
			_ = conn.Close()
			return fail(err)
		}
		links[lk.rank] = lk
		l.opts.log.Info("worker joined",
			zap.Int("rank", lk.rank),
			zap.String("remote", conn.RemoteAddr().String()),
		)
	}

	return newTCPTransport(0, l.size, links, l.opts), nil
}

// handshake reads a hello from conn and validates it against the star.
func (l *Listener) handshake(conn net.Conn, joined map[int]*link) (*link, error) {
	_ = conn.SetDeadline(time.Now().Add(handshakeTimeout))
	defer conn.SetDeadline(time.Time{})

	lk := newLink(-1, conn)
	var h hello
	if err := lk.dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("handshake: %w", err)
	}

	var reject error
	switch {
	case h.Size != l.size:
		reject = fmt.Errorf("worker expects size %d, group has %d: %w", h.Size, l.size, ErrTopology)
	case h.Rank < 1 || h.Rank >= l.size:
		reject = fmt.Errorf("rank %d out of range [1,%d): %w", h.Rank, l.size, ErrTopology)
	case joined[h.Rank] != nil:
		reject = fmt.Errorf("duplicate rank %d: %w", h.Rank, ErrTopology)
	}
	w := welcome{}
	if reject != nil {
		w.Reject = reject.Error()
	}
	if err := lk.write(context.Background(), w); err != nil {
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if reject != nil {
		return nil, reject
	}
	lk.rank = h.Rank

	return lk, nil
}

// Dial connects a worker of the given rank to the coordinator at addr.
// Errors: ErrTopology when the coordinator rejects the rank or size.
func Dial(ctx context.Context, addr string, rank, size int, opts ...Option) (*TCPTransport, error) {
	if rank < 1 || rank >= size {
		return nil, fmt.Errorf("Dial(rank=%d, size=%d): %w", rank, size, ErrTopology)
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("Dial(%s): %w", addr, err)
	}

	lk := newLink(0, conn)
	if err = lk.write(ctx, hello{Rank: rank, Size: size}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("Dial(%s): hello: %w", addr, err)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	var w welcome
	err = lk.dec.Decode(&w)
	stop()
	if err != nil {
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("Dial(%s): welcome: %w", addr, err)
	}
	_ = conn.SetReadDeadline(time.Time{})
	if w.Reject != "" {
		_ = conn.Close()
		return nil, fmt.Errorf("Dial(%s): rejected: %s: %w", addr, w.Reject, ErrTopology)
	}

	o := buildOptions(opts)
	o.log.Info("joined coordinator", zap.String("addr", addr), zap.Int("rank", rank))

	return newTCPTransport(rank, size, map[int]*link{0: lk}, o), nil
}

// TCPTransport is one member of a TCP star. The coordinator holds a link to
// every worker; a worker holds a single link to rank 0.
type TCPTransport struct {
	rank  int
	size  int
	links map[int]*link
	box   *mailbox
	log   *zap.Logger

	g         *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

func newTCPTransport(rank, size int, links map[int]*link, o tcpOptions) *TCPTransport {
	t := &TCPTransport{
		rank:  rank,
		size:  size,
		links: links,
		box:   newMailbox(),
		log:   o.log.With(zap.Int("self", rank)),
		g:     new(errgroup.Group),
	}
	for _, lk := range links {
		lk := lk // per-iteration copy; go.mod targets go 1.21
		t.g.Go(func() error { return t.readLoop(lk) })
	}

	return t
}

// readLoop decodes envelopes from lk into the mailbox until the link ends.
// An orderly end (peer hung up or Close) returns nil; anything else is the
// link's failure, reported by Close.
func (t *TCPTransport) readLoop(lk *link) error {
	for {
		env := new(Envelope)
		err := lk.dec.Decode(env)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				t.box.fail(lk.rank, ErrClosed)
				return nil
			}
			t.log.Warn("link failed", zap.Int("peer", lk.rank), zap.Error(err))
			t.box.fail(lk.rank, err)

			return fmt.Errorf("link to %d: %w", lk.rank, err)
		}
		env.From = lk.rank // identity comes from the link, not the payload
		if err = t.box.put(env); err != nil {
			return nil
		}
	}
}

func (t *TCPTransport) Rank() int { return t.rank }
func (t *TCPTransport) Size() int { return t.size }

// Send writes env to the peer. Workers can only address rank 0.
func (t *TCPTransport) Send(ctx context.Context, to int, env *Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lk, ok := t.links[to]
	if !ok {
		return fmt.Errorf("send to %d: %w", to, ErrUnknownPeer)
	}
	stamped := *env
	stamped.From = t.rank
	if err := lk.write(ctx, &stamped); err != nil {
		if errors.Is(err, net.ErrClosed) {
			err = ErrClosed
		}
		return fmt.Errorf("send to %d: %w", to, err)
	}

	return nil
}

// Recv blocks for the envelope from `from` tagged `tag`.
func (t *TCPTransport) Recv(ctx context.Context, from, tag int) (*Envelope, error) {
	if _, ok := t.links[from]; !ok {
		return nil, fmt.Errorf("recv from %d: %w", from, ErrUnknownPeer)
	}

	return t.box.take(ctx, from, tag)
}

// Close shuts every link and waits for the readers to exit. It returns the
// first link failure a reader hit, or else the first error closing a link.
// Later calls return the same result.
func (t *TCPTransport) Close() error {
	t.closeOnce.Do(func() {
		t.box.close()
		var cerr error
		for _, lk := range t.links {
			if err := lk.conn.Close(); err != nil && cerr == nil {
				cerr = err
			}
		}
		if t.closeErr = t.g.Wait(); t.closeErr == nil {
			t.closeErr = cerr
		}
	})

	return t.closeErr
}
