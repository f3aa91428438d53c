package game

// scoreTiers maps a final juggle count to a reaction. The lookup key is the
// first threshold strictly greater than the count, so landing exactly on a
// threshold takes the next tier up (5 juggles already rates the 10-tier
// face). Anything past the last threshold gets the top reaction.
var scoreTiers = []struct {
	threshold int
	emoji     string
}{
	{1, "😴"},
	{5, "🙂"},
	{10, "😊"},
	{20, "😃"},
}

// ScoreEmoji returns the reaction shown with a final juggle count.
func ScoreEmoji(count int) string {
	for _, tier := range scoreTiers {
		if tier.threshold > count {
			return tier.emoji
		}
	}
	return "🤩"
}
