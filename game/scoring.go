package game

const (
	GraveCount       = 5
	DisposalPoints   = 150
	RecyclingPoints  = 250
	maxStars         = 3.0
	threeStarScore   = 1000
	twoHalfStarScore = 750
	twoStarScore     = 500
)

// StarRating maps a final score to 1, 2, 2.5 or 3 stars
func StarRating(score int) float64 {
	switch {
	case score >= threeStarScore:
		return 3
	case score >= twoHalfStarScore:
		return 2.5
	case score >= twoStarScore:
		return 2
	}
	return 1
}

// PerformanceMessage returns the end-of-mission headline for a rating
func PerformanceMessage(rating float64) string {
	switch {
	case rating >= 3:
		return "LEGENDARY SPACE CLEANER!"
	case rating >= 2.5:
		return "EXCELLENT DEBRIS HUNTER!"
	case rating >= 2:
		return "GOOD SPACE MISSION!"
	}
	return "Keep practicing, Space Cadet!"
}

// StarGlyphs renders a rating as three cells: full, half or empty
func StarGlyphs(rating float64) string {
	out := make([]rune, 0, int(maxStars))
	for i := 1.0; i <= maxStars; i++ {
		switch {
		case rating >= i:
			out = append(out, '★')
		case rating >= i-0.5:
			out = append(out, '✬')
		default:
			out = append(out, '☆')
		}
	}
	return string(out)
}

// ===== GRAVEYARD =====

// Graveyard disposes collected debris one at a time
type Graveyard struct {
	graves    [GraveCount]int
	remaining int
	disposed  int
}

// NewGraveyard prepares disposal of debris objects
func NewGraveyard(debris int) *Graveyard {
	if debris < 0 {
		debris = 0
	}
	return &Graveyard{remaining: debris}
}

// Dispose buries one debris in grave; returns points awarded (0 if nothing left or grave invalid)
func (g *Graveyard) Dispose(grave int) int {
	if g.remaining == 0 || grave < 0 || grave >= GraveCount {
		return 0
	}
	g.graves[grave]++
	g.remaining--
	g.disposed++
	return DisposalPoints
}

// Done reports that every debris has been disposed of
func (g *Graveyard) Done() bool { return g.remaining == 0 }

func (g *Graveyard) Remaining() int         { return g.remaining }
func (g *Graveyard) Disposed() int          { return g.disposed }
func (g *Graveyard) Occupancy(grave int) int { return g.graves[grave] }

// ===== RECYCLING =====

// Product is a recycling output option
type Product struct {
	ID          string
	Name        string
	Description string
	Thanks      string
}

var Products = []Product{
	{"metal-rods", "Metal Rods", "Transform debris into useful metal rods",
		"Thank you for recycling me into a metal rod!"},
	{"storage-containers", "Storage Containers", "Create storage containers for space missions",
		"Thank you for recycling me into a storage container!"},
	{"spacecraft-parts", "New Spacecraft Parts", "Manufacture new spacecraft components",
		"Thank you for recycling me into a new spacecraft part!"},
	{"station-components", "Space Station Components", "Build components for space stations",
		"Thank you for recycling me into a space station component!"},
}

// Recycler converts the whole haul into one product, once
type Recycler struct {
	debris  int
	product *Product
}

func NewRecycler(debris int) *Recycler {
	return &Recycler{debris: debris}
}

// Potential is the score a recycling run would award
func (r *Recycler) Potential() int { return r.debris * RecyclingPoints }

// Recycle selects a product by index; returns the points awarded, 0 on repeat or bad index
func (r *Recycler) Recycle(index int) int {
	if r.product != nil || index < 0 || index >= len(Products) {
		return 0
	}
	r.product = &Products[index]
	return r.Potential()
}

// Product returns the chosen product, nil before Recycle
func (r *Recycler) Product() *Product { return r.product }
