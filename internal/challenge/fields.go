package challenge

// Field names accepted by the task events. They match the JSON names of the daily log.
const (
	FieldBedtime  = "bedtime"
	FieldWaketime = "waketime"

	FieldMealtimes        = "mealtimes"
	FieldWater            = "water"
	FieldFood             = "food"
	FieldNonWaterDrinks   = "nonWaterDrinks"
	FieldJunkFoodStopped  = "junkFoodStopped"
	FieldFruitSnacks      = "fruitSnacks"
	FieldMealTimesAdhered = "mealTimesAdhered"
	FieldCaloriesTracked  = "caloriesTracked"

	FieldMindfulness  = "mindfulnessCompleted"
	FieldBreathing    = "breathingCompleted"
	FieldEnjoyable    = "enjoyableActivityCompleted"
	FieldMoodBefore   = "moodBefore"
	FieldStressBefore = "stressBefore"
	FieldMoodAfter    = "moodAfter"
	FieldStressAfter  = "stressAfter"

	FieldInstancesLogged       = "instancesLogged"
	FieldContextLogged         = "contextLogged"
	FieldTriggerAvoided        = "triggerAvoided"
	FieldSubstitutionPracticed = "substitutionPracticed"

	FieldBehavior     = "behavior"
	FieldTrigger      = "trigger"
	FieldSubstitution = "substitution"
)

var (
	SleepFields       = []string{FieldBedtime, FieldWaketime}
	WeightFields      = []string{FieldMealtimes, FieldWater, FieldFood, FieldNonWaterDrinks, FieldJunkFoodStopped, FieldFruitSnacks, FieldMealTimesAdhered, FieldCaloriesTracked}
	PeaceOfMindFields = []string{FieldMindfulness, FieldBreathing, FieldEnjoyable, FieldMoodBefore, FieldStressBefore, FieldMoodAfter, FieldStressAfter}
	QuitFields        = []string{FieldInstancesLogged, FieldContextLogged, FieldTriggerAvoided, FieldSubstitutionPracticed}
	QuitProgramFields = []string{FieldBehavior, FieldTrigger, FieldSubstitution}
)
