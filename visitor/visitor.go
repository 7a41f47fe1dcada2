package visitor

// Visitor calls the supplied callback for each (key, element) pair.
// Returning (false, nil) from the callback stops the visit, returning an error stops it with that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Elements collects all visited elements in visit order.
func (v Visitor[K, E]) Elements() ([]E, error) {
	var result []E
	err := v(func(_ K, element E) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	return result, err
}
