package constants

// Point values awarded for challenge actions.
const (
	PointsSleepTarget = 2.0

	PointsWeightText     = 1.0
	PointsWeightFlag     = 2.0
	PointsWeightCalories = 5.0

	PointsExercise = 10.0

	PointsMindfulness = 2.0
	PointsBreathing   = 2.0
	PointsEnjoyable   = 3.0
	PointsMoodStress  = 0.5

	PointsQuitLogged     = 1.0
	PointsQuitAvoided    = 3.0
	PointsQuitPracticed  = 3.0
	PointsQuitTrigger    = 5.0
	PointsQuitSubstitute = 5.0

	PointsDayComplete = 25.0
	PointsWeekBonus   = 100.0
)
