package pbtext

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(v View) error

// Walk performs a pre-order traversal starting at root, root included.
// If walkFunc returns a non-nil error, the walk stops and returns that error.
func Walk(root View, walkFunc WalkFunc) error {
	if !root.IsValid() {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.message().children {
		if err := Walk(View{doc: root.doc, msg: child}, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after. Either may be nil.
func WalkWithContext(root View, enter, leave WalkFunc) error {
	if !root.IsValid() {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for _, child := range root.message().children {
		if err := WalkWithContext(View{doc: root.doc, msg: child}, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// AllKeys returns the names of every block below root in pre-order:
// each block's name is followed by the names of its descendants.
func AllKeys(root View) []string {
	keys := []string{}
	_ = Walk(root, func(v View) error {
		if v.msg != root.msg {
			keys = append(keys, v.Name())
		}
		return nil
	})
	return keys
}

// Depth returns the nesting depth of the deepest block below root.
// A view without children has depth 0.
func Depth(root View) int {
	if !root.IsValid() {
		return 0
	}
	deepest := 0
	for _, child := range root.Children() {
		if d := Depth(child) + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}
