// Package wellsite finds the best spot for a well on a map of houses and
// trees: the open cell from which the summed walking distance to every
// house is smallest, walking up, down, left or right and never through a
// tree.
//
// Under the hood, everything is organized in small packages:
//
//	terrain/    the Grid model, cell types, random generation and text parsing
//	propagate/  single-source walking distances (breadth-first, explicit queue)
//	facility/   the well search (FindBestWell) and full placement pipeline (Site)
//	trail/      one shortest walk from each house back to the well
//	render/     the text map, optionally with per-cell distances
//	report/     a YAML summary of a run
//	dispense/   banknote splitting (companion exercise)
//	heapsort/   heap sort with an ASCII heap view (companion exercise)
//
// A placed well, with H a house, t a tree, O the well and # a trail:
//
//	H...t...
//	#...t..H
//	#...t..#
//	#O######
//	.H......
package wellsite
