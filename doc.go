// Package lumina reads JSON hypermedia documents. Documents embed
// resources, links, forms and typed properties; reserved metadata
// property names begin with '@'. Callers navigate by semantic relation
// rather than by positional property name:
//
//	node, _ := decode.Parse(body)
//	res, _ := lumina.New(node, baseURI, "$")
//	link, _ := res.Resource("manager")
//	uri, _ := link.URI()
//
// A relation search walks the document recursively, skipping metadata
// properties (except the state container) and never descending into
// nested resources: objects that carry their own valid "@link". The
// result is a Link, which either includes the target's state (embedded
// resource) or carries only its URI.
//
// Every operation is a pure read over an immutable node tree; resources,
// properties and links may be shared between goroutines without locking.
package lumina
