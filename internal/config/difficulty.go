package config

// blockStep returns how many blocks past the first the given block is.
func blockStep(block int) float64 {
	if block < 1 {
		return 0
	}
	return float64(block - 1)
}

// CourseGoal returns the understanding goal of a course generated in block.
func (r Rules) CourseGoal(block int) float64 {
	return r.Courses.BaseGoal + blockStep(block)*r.Scaling.GoalPerBlock
}

// MaxUnderstandings returns the per-lecture understanding bound for block.
func (r Rules) MaxUnderstandings(block int) float64 {
	return r.Courses.BaseMaxUnderstandings + blockStep(block)*r.Scaling.UnderstandingsPerBlock
}

// MaxProcrastination returns the per-lecture procrastination bound for block.
func (r Rules) MaxProcrastination(block int) float64 {
	return r.Courses.BaseMaxProcrastination + blockStep(block)*r.Scaling.ProcrastinationPerBlock
}

// MaxEnergyCost returns the per-lecture energy cost bound for block.
func (r Rules) MaxEnergyCost(block int) float64 {
	return r.Courses.BaseMaxEnergyCost + blockStep(block)*r.Scaling.EnergyCostPerBlock
}

// QuestCost returns the understanding cost of a quest generated in block.
func (r Rules) QuestCost(block int) float64 {
	return r.Quests.BaseCost + float64(block)*r.Quests.CostPerBlock
}

// QuestReward returns the cash reward of a quest generated in block.
func (r Rules) QuestReward(block int) float64 {
	return r.Quests.BaseReward + float64(block)*r.Quests.RewardPerBlock
}

// ItemPrice returns the shop price of a random item in block.
func (r Rules) ItemPrice(block int) float64 {
	return r.Shop.BasePrice + blockStep(block)*r.Shop.PricePerBlock
}
