package bundle

import "bundling/internal/core/domain/model/kernel"

// IndentStep is the indentation unit used by Describe: exactly two spaces per
// nesting level. Report renderers rely on this width when parsing dumps.
const IndentStep = "  "

// Element is the closed set of nodes a bundle tree is built from: an *Item
// leaf or a *Container composite. The unexported marker method seals the
// interface, so every traversal can type-switch exhaustively over the two
// variants instead of sniffing structure at runtime.
type Element interface {
	// Price returns the element's current price. For containers this is a
	// recursive, on-demand computation over the whole subtree.
	Price() kernel.Money

	// Describe renders the element as human-readable text, indented by
	// level nesting units. Containers produce one line per node in the
	// subtree; items produce a single line.
	Describe(level int) string

	// Validate ensures the element was created via its constructor.
	Validate() error

	// isElement seals the interface to the in-package variants.
	isElement()

	// setOwner records which container currently holds the element.
	// Single ownership keeps the structure a tree: an element attached to
	// one container cannot be inserted into another, which rules out
	// shared subtrees and, together with the ancestry check in Add,
	// reference cycles.
	setOwner(owner *Container)

	// owner returns the container currently holding the element, or nil.
	owner() *Container
}

// IsAttached reports whether element is currently owned by a container.
// Code holding elements outside the bundle package (the order aggregate)
// uses it to reject elements that already live inside a tree, which would
// otherwise be priced and rendered twice.
func IsAttached(element Element) bool {
	return element != nil && element.owner() != nil
}

// FindByName walks the given roots depth-first and returns the first element
// whose name matches, together with its owning container (nil when the match
// is one of the roots). Returns (nil, nil) when no element matches.
func FindByName(roots []Element, name string) (Element, *Container) {
	for _, el := range roots {
		switch v := el.(type) {
		case *Item:
			if v.Name() == name {
				return v, v.owner()
			}
		case *Container:
			if v.Name() == name {
				return v, v.owner()
			}
			if found, parent := FindByName(v.Contents(), name); found != nil {
				return found, parent
			}
		}
	}

	return nil, nil
}
