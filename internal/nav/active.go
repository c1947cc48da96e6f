package nav

// ContainsActive reports whether n links to route, or, for a group, whether
// any descendant does. Matching is exact; an empty href never matches.
func ContainsActive(n Node, route string) bool {
	if href := n.Link(); href != "" && href == route {
		return true
	}
	if g, ok := n.(*Group); ok {
		for _, child := range g.Links {
			if ContainsActive(child, route) {
				return true
			}
		}
	}
	return false
}
