// Package seamcarve computes the energy map and the cumulative minimum-cost
// map of a grayscale raster, the two tables content-aware resizing (seam
// carving) is built on.
//
// 🚀 What is in the box?
//
//	A small, dependency-light pipeline over in-memory integer rasters:
//		• raster/     - fixed-size row-major int64 grids and gray images
//		• energy/     - 4-neighbour absolute-gradient energy, optional row parallelism
//		• cumulative/ - top-down dynamic program of minimum path cost
//		• pgm/        - plain-text P2 codec with comment handling
//		• plot/       - per-row cost/energy profile charts
//		• cmd/seamcarve - command-line front end
//
// Data flows strictly forward:
//
//	intensity ──► energy ──► cumulative cost ──► (encode)
//
// No stage reads back from a later one and no raster is mutated after it is
// handed on. Run wires the two numeric stages together.
//
// Quick example:
//
//	img, _ := pgm.ReadFile(fsutil.OSFileSystem{}, "in.pgm")
//	res, err := seamcarve.Run(img, seamcarve.WithWorkers(4))
//	// res.Energy, res.Cost share img's shape
//
// Finding and removing the cheapest seam are not part of this module.
package seamcarve
