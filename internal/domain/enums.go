package domain

// UserRole defines the application role hierarchy.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTrainee UserRole = "trainee"
)

// ValidUserRoles enumerates the assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleTrainee: true,
}

// SessionStatus represents the lifecycle of a simulation session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// SessionOutcome classifies how a completed simulation ended.
type SessionOutcome string

const (
	OutcomeSaleClosed   SessionOutcome = "venda_realizada"
	OutcomeSaleLost     SessionOutcome = "venda_nao_realizada"
	OutcomeUndetermined SessionOutcome = "indeterminado"
)

// MessageSender identifies who produced a simulation message.
type MessageSender string

const (
	SenderTrainee MessageSender = "trainee"
	SenderClient  MessageSender = "client"
)

// PersonaDifficulty grades simulated client personas.
type PersonaDifficulty string

const (
	DifficultyEasy   PersonaDifficulty = "easy"
	DifficultyMedium PersonaDifficulty = "medium"
	DifficultyHard   PersonaDifficulty = "hard"
	DifficultyBoss   PersonaDifficulty = "boss"
)

// ReviewGrade is the trainee's self-assessment of a flashcard review.
type ReviewGrade string

const (
	GradeAgain ReviewGrade = "again"
	GradeGood  ReviewGrade = "good"
)

// StatsGranularity controls period bucketing on reporting queries.
type StatsGranularity string

const (
	GranularityDay   StatsGranularity = "day"
	GranularityWeek  StatsGranularity = "week"
	GranularityMonth StatsGranularity = "month"
)
