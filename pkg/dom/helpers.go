package dom

// If returns the element if condition is true, nil otherwise.
// Constructors skip nil arguments, so this enables conditional children.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Map builds one child per input value, in order.
func Map[T any](items []T, fn func(T) *Element) []Content {
	children := make([]Content, 0, len(items))
	for _, item := range items {
		if el := fn(item); el != nil {
			children = append(children, Content{Kind: ContentElement, Element: el})
		}
	}
	return children
}
