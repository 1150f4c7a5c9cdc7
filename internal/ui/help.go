package ui

// HelpLines lists the keyboard and mouse bindings shown by the overlay.
func HelpLines(threeD bool) []string {
	lines := []string{
		"Space  play / pause",
		"N      next generation",
		"R      random board",
		"C      clear",
		"X      reset to initial board",
		"+ / -  cell size",
		"H      toggle this help",
		"Q/Esc  quit",
	}
	if threeD {
		return append(lines,
			"click        toggle tile",
			"right-drag   orbit",
			"wheel        zoom",
			"T            cloud / table",
		)
	}
	return append(lines, "click  toggle cell")
}
