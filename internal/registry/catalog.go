package registry

// Catalog is the built-in calculator list, ordered as shown on the
// catalog page. Names must stay stable: the recommendation flow returns
// them verbatim and the UI resolves them back to slugs.
var Catalog = []Calculator{
	{Name: "Decking Calculator", Slug: "decking", Category: CategoryOutdoor,
		Description: "Estimates deck boards, joists and fasteners for a deck of a given size."},
	{Name: "Concrete Slab Calculator", Slug: "concrete-slab", Category: CategoryStructural,
		Description: "Estimates cubic yards of concrete for slabs, patios and pads."},
	{Name: "Paint Calculator", Slug: "paint", Category: CategoryFinishing,
		Description: "Estimates gallons of paint and primer for walls and ceilings."},
	{Name: "Wallpaper Calculator", Slug: "wallpaper", Category: CategoryFinishing,
		Description: "Estimates wallpaper rolls from wall dimensions and pattern repeat."},
	{Name: "Flooring Calculator", Slug: "flooring", Category: CategoryInterior,
		Description: "Estimates hardwood or laminate flooring with waste allowance."},
	{Name: "Tile Calculator", Slug: "tile", Category: CategoryInterior,
		Description: "Estimates tiles, grout and thinset for floors and backsplashes."},
	{Name: "Carpet Calculator", Slug: "carpet", Category: CategoryInterior,
		Description: "Estimates carpet and padding square footage per room."},
	{Name: "Drywall Calculator", Slug: "drywall", Category: CategoryInterior,
		Description: "Estimates drywall sheets, joint compound and screws."},
	{Name: "Insulation Calculator", Slug: "insulation", Category: CategoryInterior,
		Description: "Estimates insulation batts or blown-in coverage by R-value."},
	{Name: "Roofing Calculator", Slug: "roofing", Category: CategoryStructural,
		Description: "Estimates shingle squares and underlayment from roof pitch and area."},
	{Name: "Fence Calculator", Slug: "fence", Category: CategoryOutdoor,
		Description: "Estimates posts, rails and pickets for a fence run."},
	{Name: "Mulch Calculator", Slug: "mulch", Category: CategoryOutdoor,
		Description: "Estimates cubic yards of mulch for beds at a chosen depth."},
	{Name: "Gravel Calculator", Slug: "gravel", Category: CategoryOutdoor,
		Description: "Estimates tons of gravel for driveways and paths."},
	{Name: "Grass Seed Calculator", Slug: "grass-seed", Category: CategoryOutdoor,
		Description: "Estimates seed and fertilizer quantities for a lawn area."},
	{Name: "Paver Calculator", Slug: "paver", Category: CategoryOutdoor,
		Description: "Estimates pavers, sand and gravel base for patios and walkways."},
	{Name: "Brick Calculator", Slug: "brick", Category: CategoryStructural,
		Description: "Estimates bricks and mortar bags for walls and columns."},
	{Name: "Stair Calculator", Slug: "stair", Category: CategoryStructural,
		Description: "Computes riser height, tread depth and stringer layout."},
	{Name: "Baseboard Calculator", Slug: "baseboard", Category: CategoryFinishing,
		Description: "Estimates baseboard and trim lengths around room perimeters."},
	{Name: "Vinyl Siding Calculator", Slug: "vinyl-siding", Category: CategoryFinishing,
		Description: "Estimates siding squares and accessories for exterior walls."},
	{Name: "Asphalt Calculator", Slug: "asphalt", Category: CategoryOutdoor,
		Description: "Estimates hot-mix asphalt tonnage for driveways."},
	{Name: "Wall Framing Calculator", Slug: "wall-framing", Category: CategoryStructural,
		Description: "Estimates studs, plates and headers for framed walls."},
	{Name: "Sand Calculator", Slug: "sand", Category: CategoryOutdoor,
		Description: "Estimates sand volume and weight for fill and leveling."},
}
