package quiz

import "fmt"

// Mark is how an option is highlighted once the question is answered.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkWrong:
		return "wrong"
	default:
		return "none"
	}
}

const (
	FeedbackCorrect = "✅ ถูกต้อง เก่งมากจ้าาา"
	feedbackWrong   = "❌ อาจจะยังน้าาา อันนี้แปลว่า %s"

	LabelNextQuestion = "คำถามถัดไป"
	LabelSeeResult    = "ดูผลลัพธ์"
	LabelBackHome     = "กลับหน้าหลัก"
	LabelReview       = "ทบทวนอีกครั้ง"
)

// Outcome is the scored answer to a question.
type Outcome struct {
	Selected string
	Correct  bool
	Marks    []Mark // parallel to Question.Options
	Feedback string
}

// Points is what the answer adds to the score.
func (o Outcome) Points() int {
	if o.Correct {
		return 1
	}
	return 0
}

// Evaluate scores selected against the question by exact string equality.
// The correct option is always marked; a wrong pick is marked too.
func Evaluate(q Question, selected string) Outcome {
	ok := selected == q.Correct
	marks := make([]Mark, len(q.Options))
	for i, opt := range q.Options {
		switch {
		case opt == q.Correct:
			marks[i] = MarkCorrect
		case opt == selected && !ok:
			marks[i] = MarkWrong
		}
	}

	fb := FeedbackCorrect
	if !ok {
		fb = fmt.Sprintf(feedbackWrong, q.Correct)
	}
	return Outcome{Selected: selected, Correct: ok, Marks: marks, Feedback: fb}
}

// AdvanceLabel is the label of the control shown after an answer.
func AdvanceLabel(last bool) string {
	if last {
		return LabelSeeResult
	}
	return LabelNextQuestion
}

// FormatScore renders a score as "correct/total".
func FormatScore(score, total int) string {
	return fmt.Sprintf("%d/%d", score, total)
}
