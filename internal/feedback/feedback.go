// internal/feedback/feedback.go
//
// Feedback scoring for a single (guess, secret) pair.
// Responsibilities:
//   - Score guesses using the classic two-pass algorithm, which is correct
//     for repeated letters in both guess and secret.
//   - Encode the per-letter marks as a compact base-3 Pattern for use as a
//     partition/cache key.
//
// Notes:
//   - Mark values are Miss=0, Present=1, Hit=2; position 0 is the most
//     significant base-3 digit, so the all-hit pattern is 3^5-1 = 242.
//   - Pattern.String() renders the original tool's g/y/r notation.
package feedback

// WordLen is the fixed word length for the game.
const WordLen = 5

// NumPatterns is the number of distinct feedback patterns (3^WordLen).
const NumPatterns = 243

// Mark is the evaluation result for a single letter of a guess.
type Mark uint8

const (
	MarkMiss    Mark = iota // letter does not occur (or occurrences used up)
	MarkPresent             // right letter, wrong position
	MarkHit                 // right letter, right position
)

// Pattern is a feedback pattern packed as a base-3 integer, with the mark
// for position 0 in the most significant digit.
type Pattern uint8

// AllHit is the pattern returned when guess == secret.
const AllHit Pattern = NumPatterns - 1

// Score evaluates guess against secret and returns the packed pattern.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) secret letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// The count table guarantees Hit+Present occurrences of any letter never
// exceed its multiplicity in secret. Both inputs must be length WordLen,
// lowercase a-z; the words package validates this at load time.
func Score(guess, secret string) Pattern {
	var marks [WordLen]Mark

	// Letter frequency for the non-hit secret positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkHit
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if marks[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			marks[i] = MarkPresent
			counts[j]--
		}
	}
	return Pack(marks)
}

// Pack encodes per-position marks into a Pattern.
func Pack(marks [WordLen]Mark) Pattern {
	var p uint16
	for _, m := range marks {
		p = p*3 + uint16(m)
	}
	return Pattern(p)
}

// Marks unpacks the pattern back into per-position marks.
func (p Pattern) Marks() [WordLen]Mark {
	var marks [WordLen]Mark
	v := uint16(p)
	for i := WordLen - 1; i >= 0; i-- {
		marks[i] = Mark(v % 3)
		v /= 3
	}
	return marks
}

// String renders the pattern in g/y/r notation: "g" hit, "y" present, "r" miss.
func (p Pattern) String() string {
	marks := p.Marks()
	buf := make([]byte, WordLen)
	for i, m := range marks {
		switch m {
		case MarkHit:
			buf[i] = 'g'
		case MarkPresent:
			buf[i] = 'y'
		default:
			buf[i] = 'r'
		}
	}
	return string(buf)
}
