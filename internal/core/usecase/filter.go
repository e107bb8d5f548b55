package usecase

const (
	// Review-count bounds of the quality gate. Places below the floor are
	// too obscure to trust, places above the ceiling are tourist magnets.
	minReviewCount = 5
	maxReviewCount = 2500

	// Candidates further out than radius times this factor are dropped even
	// when the provider returned them for the search circle.
	radiusMarginFactor = 1.5
)

func passesQualityGate(reviewCount int) bool {
	return reviewCount >= minReviewCount && reviewCount <= maxReviewCount
}

func withinRadiusMargin(distanceMeters float64, radiusMeters int) bool {
	return distanceMeters <= float64(radiusMeters)*radiusMarginFactor
}
