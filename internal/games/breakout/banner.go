package breakout

import "io"

const (
	winBanner = "\n\t################\n" +
		"\t# You win! >:) #\n" +
		"\t################\n\n"

	loseBanner = "\n\t#################\n" +
		"\t# You lose! >:( #\n" +
		"\t#################\n\n"
)

// Banner returns the message printed after the terminal is restored.
// A game that is still playing has no banner.
func Banner(o Outcome) string {
	switch o {
	case OutcomeWon:
		return winBanner
	case OutcomeLost:
		return loseBanner
	default:
		return ""
	}
}

// WriteBanner writes the banner for o to w.
func WriteBanner(w io.Writer, o Outcome) error {
	msg := Banner(o)
	if msg == "" {
		return nil
	}
	_, err := io.WriteString(w, msg)
	return err
}
