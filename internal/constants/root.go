package constants

import (
	"time"
)

// SessionState represents the current screen of the TUI application
type SessionState int

// TaskKey identifies one of the five daily challenge tasks
type TaskKey string

// ExerciseTrack represents the user's chosen exercise intensity
type ExerciseTrack string

// Screen is the top-level destination chosen from the profile lifecycle flags
type Screen string

const (
	AppName            = "bodysoul"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/bodysoul/bodysoul.db"
	Version            = "v0.1.0"

	// ProfileKey is the record key the profile is stored under. Changing it is a factory reset.
	ProfileKey = "bodyAndSoulAppUserBulmaV2"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Challenge shape
	TotalWeeks          = 10
	DaysPerWeek         = 7
	WeekBadgeThreshold  = 5
	WeekBadgeNameFormat = "Week %d Warrior"
	GratitudeKeyFormat  = "week%d"
	GratitudeFromWeek   = 2
	SleepTargetFromWeek = 2

	// Sleep targets
	DefaultSleepTargetBedtime  = "22:30"
	DefaultSleepTargetWaketime = "06:30"
	SleepTargetToleranceMin    = 30

	// Nutrition
	DefaultCaloricDeficit = 500
	FemaleCalorieBase     = 1800
	DefaultCalorieBase    = 2200
	IdealBMI              = 22.0

	// Mindfulness
	MindfulnessDuration = 60 * time.Second
	MindfulnessInterval = time.Second

	// Coach
	DefaultMotivationEndpoint = "https://api.example.com/motivate"
	DefaultChatEndpoint       = "https://api.example.com/llm-chat"
	CoachTimeout              = 5 * time.Second

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "bodysoul-"

	// Notify constants
	NotifierLockfileName   = "bodysoul-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.bodysoul"
	TrayAppExecutable      = "bodysoul-tray"

	// Task keys
	TaskSleep         TaskKey = "sleep"
	TaskWeightControl TaskKey = "weightControl"
	TaskExercise      TaskKey = "exercise"
	TaskPeaceOfMind   TaskKey = "peaceOfMind"
	TaskMakeMeQuit    TaskKey = "makeMeQuit"

	// Exercise tracks
	TrackBeginner     ExerciseTrack = "beginner"
	TrackIntermediate ExerciseTrack = "intermediate"
	TrackAdvanced     ExerciseTrack = "advanced"

	// Screens
	ScreenWelcome   Screen = "welcome"
	ScreenBaseline  Screen = "baseline"
	ScreenDashboard Screen = "dashboard"

	// Session States
	StateDashboard SessionState = iota
	StateCalendar
	StateCoach
	StateSettings
	StateWelcome
	StateRegister
	StateBaseline
	StateLogForm
	StateMindfulness
	StateConfirmReset
)

// TaskKeys lists the daily tasks in display order.
var TaskKeys = []TaskKey{TaskSleep, TaskWeightControl, TaskExercise, TaskPeaceOfMind, TaskMakeMeQuit}

// TaskTitles maps task keys to display names.
var TaskTitles = map[TaskKey]string{
	TaskSleep:         "Sleep",
	TaskWeightControl: "Weight Control",
	TaskExercise:      "Exercise",
	TaskPeaceOfMind:   "Peace of Mind",
	TaskMakeMeQuit:    "Make Me Quit",
}

// IsValid reports whether k is one of the five task keys.
func (k TaskKey) IsValid() bool {
	_, ok := TaskTitles[k]
	return ok
}
