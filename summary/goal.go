package summary

// DefaultDailyTarget is the fixed daily goal in decimal hours.
const DefaultDailyTarget = 8.5

type GoalStatus string

const (
	GoalNotStarted   GoalStatus = "not-started"
	GoalInProgress   GoalStatus = "in-progress"
	GoalCompleted    GoalStatus = "completed"
	GoalOverachieved GoalStatus = "overachieved"
)

// GoalState classifies today's total against the daily target. Progress is
// capped at 100; remaining and overtime are floored at 0, so at most one of
// them is nonzero except at exactly the target, where both are zero.
type GoalState struct {
	TargetHours    float64
	AchievedHours  float64
	Progress       float64
	RemainingHours float64
	OvertimeHours  float64
	Status         GoalStatus
}

// EvaluateGoal recomputes the goal state from scratch for today's total.
func EvaluateGoal(todayHours, targetHours float64) GoalState {
	state := GoalState{
		TargetHours:   targetHours,
		AchievedHours: todayHours,
	}

	if targetHours > 0 {
		state.Progress = todayHours / targetHours * 100
		if state.Progress > 100 {
			state.Progress = 100
		}
	}

	state.RemainingHours = targetHours - todayHours
	if state.RemainingHours < 0 {
		state.RemainingHours = 0
	}
	state.OvertimeHours = todayHours - targetHours
	if state.OvertimeHours < 0 {
		state.OvertimeHours = 0
	}

	switch {
	case todayHours == 0:
		state.Status = GoalNotStarted
	case todayHours < targetHours:
		state.Status = GoalInProgress
	case todayHours == targetHours:
		state.Status = GoalCompleted
	default:
		state.Status = GoalOverachieved
	}

	return state
}
