package mealplan

import "encoding/json"

// Candidate is a partially trusted recommendation produced by an external
// model. Every section is optional: a nil section means the external output
// was missing or malformed there and the deterministic value must be used.
type Candidate struct {
	MealPlan          *CandidateMealPlan
	PreferredFoods    *PreferredFoods
	FoodsToLimit      *FoodsToLimit
	PortionGuidelines map[string]string
	MealTiming        *MealTiming
}

// CandidateMealPlan carries per slot overrides. A nil slot falls back
// to the deterministic slot.
type CandidateMealPlan struct {
	Breakfast SlotFoods
	Lunch     SlotFoods
	Dinner    SlotFoods
	Snacks    SlotFoods
}

// ParseCandidate decodes external model output into a Candidate without
// ever failing on bad input. The document is decoded in two phases, first
// into raw sections and then section by section, so one malformed section
// cannot poison the rest. A document that is not a JSON object at all
// yields a nil candidate.
func ParseCandidate(data []byte) *Candidate {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil
	}

	candidate := &Candidate{}

	if raw, ok := sections["meal_plan"]; ok && !isNullSection(raw) {
		candidate.MealPlan = parseCandidateMealPlan(raw)
	}
	if raw, ok := sections["preferred_foods"]; ok && !isNullSection(raw) {
		var preferred PreferredFoods
		if err := json.Unmarshal(raw, &preferred); err == nil {
			candidate.PreferredFoods = &preferred
		}
	}
	if raw, ok := sections["foods_to_limit"]; ok && !isNullSection(raw) {
		var limit FoodsToLimit
		if err := json.Unmarshal(raw, &limit); err == nil {
			candidate.FoodsToLimit = &limit
		}
	}
	if raw, ok := sections["portion_guidelines"]; ok {
		var portions map[string]string
		if err := json.Unmarshal(raw, &portions); err == nil && portions != nil {
			candidate.PortionGuidelines = portions
		}
	}
	if raw, ok := sections["meal_timing"]; ok && !isNullSection(raw) {
		var timing MealTiming
		if err := json.Unmarshal(raw, &timing); err == nil {
			candidate.MealTiming = &timing
		}
	}

	return candidate
}

func parseCandidateMealPlan(raw json.RawMessage) *CandidateMealPlan {
	var slots map[string]json.RawMessage
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil
	}
	plan := &CandidateMealPlan{
		Breakfast: parseSlot(slots["breakfast"]),
		Lunch:     parseSlot(slots["lunch"]),
		Dinner:    parseSlot(slots["dinner"]),
		Snacks:    parseSlot(slots["snacks"]),
	}
	return plan
}

// isNullSection reports whether a raw section is the JSON literal null.
// Unmarshalling null into a struct succeeds as a no-op, which would make
// the section look present with zero values instead of absent.
func isNullSection(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func parseSlot(raw json.RawMessage) SlotFoods {
	if raw == nil {
		return nil
	}
	var slot SlotFoods
	if err := json.Unmarshal(raw, &slot); err != nil {
		return nil
	}
	return slot
}
