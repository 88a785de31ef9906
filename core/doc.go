// Package core provides the foundational domain types and collaborator
// interfaces used by mcpcall. It defines the core abstractions for:
//
//   - Tool call results (a closed set of content items: text, image and
//     embedded resources)
//   - Lifecycle events (Begin / End notifications addressed to a subscription)
//   - Outcomes and response items handed back to the calling transcript
//   - The Session capability (tool invocation, resource reads, event delivery)
//
// The package intentionally keeps implementation concerns (transport,
// event delivery, dispatch policy) out of scope, exposing small interfaces
// so callers can substitute fakes or custom backends.
package core
