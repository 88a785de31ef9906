// Package session houses a concrete, in-memory implementation of core.Session.
// The interface itself lives in the core package to centralize domain
// contracts. Keeping only implementations here prevents the dispatcher from
// depending on a concrete tool backend or event transport.
//
// A Session composes a tool backend (for example an *mcp.Manager) with a
// buffered event channel observed by the caller:
//
//	sess := session.New(manager)
//	go func() {
//		for ev := range sess.Events() { ... }
//	}()
package session
