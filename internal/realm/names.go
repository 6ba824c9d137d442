package realm

// KingdomNames is the fixed pool of kingdom display names. A name is
// used by at most one kingdom at a time, so the pool also bounds how
// many kingdoms can ever coexist alongside the active-count cap.
var KingdomNames = []string{
	"Valdoria", "Karthmere", "Eastmarch", "Sundholm", "Virelay",
	"Drakken", "Morvaine", "Thornwall", "Aldengard", "Caelmont",
}

// DynastyNames is the pool of ruling-house names.
var DynastyNames = []string{
	"House Ravencrest", "House Maelor", "House Vancewood", "House Ostergard",
	"House Delacroix", "House Wynmark", "House Corvale", "House Brandt",
}
