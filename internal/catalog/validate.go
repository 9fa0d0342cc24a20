package catalog

import (
	"fmt"
	"strings"
)

// QuizOptions is the number of answer options per quiz question: the
// correct translation plus three distractors.
const QuizOptions = 4

// IssueKind classifies a validation finding.
type IssueKind string

const (
	IssueDuplicateID    IssueKind = "duplicate_id"
	IssueNoVocab        IssueKind = "no_vocab"
	IssueEmptyField     IssueKind = "empty_field"
	IssueNotQuizzable   IssueKind = "not_quizzable"
	IssueMissingTitle   IssueKind = "missing_title"
	IssueDuplicateEntry IssueKind = "duplicate_entry"
)

// Issue is one validation finding. Issues are warnings: a catalog with
// issues still loads.
type Issue struct {
	Kind     IssueKind
	LessonID int
	Entry    int // vocab index, -1 when the issue is about the lesson
	Detail   string
}

func (i Issue) String() string {
	if i.Entry >= 0 {
		return fmt.Sprintf("lesson %d entry %d: %s (%s)", i.LessonID, i.Entry, i.Detail, i.Kind)
	}
	return fmt.Sprintf("lesson %d: %s (%s)", i.LessonID, i.Detail, i.Kind)
}

// Blocking reports whether the issue prevents part of the lesson from being
// used (as opposed to cosmetic findings).
func (i Issue) Blocking() bool {
	return i.Kind == IssueNotQuizzable || i.Kind == IssueNoVocab || i.Kind == IssueDuplicateID
}

// Validate inspects the catalog and returns every finding in lesson order.
func Validate(c *Catalog) []Issue {
	if c == nil {
		return nil
	}
	var issues []Issue
	seenIDs := make(map[int]bool, len(c.Lessons))
	for _, l := range c.Lessons {
		if seenIDs[l.ID] {
			issues = append(issues, Issue{Kind: IssueDuplicateID, LessonID: l.ID, Entry: -1, Detail: "lesson id used more than once"})
		}
		seenIDs[l.ID] = true

		if strings.TrimSpace(l.Title) == "" {
			issues = append(issues, Issue{Kind: IssueMissingTitle, LessonID: l.ID, Entry: -1, Detail: "lesson has no title"})
		}
		if len(l.Vocab) == 0 {
			issues = append(issues, Issue{Kind: IssueNoVocab, LessonID: l.ID, Entry: -1, Detail: "lesson has no vocabulary"})
			continue
		}

		terms := make(map[string]int, len(l.Vocab))
		for i, v := range l.Vocab {
			if strings.TrimSpace(v.Term) == "" || strings.TrimSpace(v.Translation) == "" {
				issues = append(issues, Issue{Kind: IssueEmptyField, LessonID: l.ID, Entry: i, Detail: "term and translation are required"})
			}
			if prev, ok := terms[v.Term]; ok && v.Term != "" {
				issues = append(issues, Issue{Kind: IssueDuplicateEntry, LessonID: l.ID, Entry: i, Detail: fmt.Sprintf("term %q repeats entry %d", v.Term, prev)})
				continue
			}
			terms[v.Term] = i
		}

		if n := len(DistinctTranslations(l.Vocab)); n < QuizOptions {
			issues = append(issues, Issue{
				Kind:     IssueNotQuizzable,
				LessonID: l.ID,
				Entry:    -1,
				Detail:   fmt.Sprintf("%d distinct translations, quiz needs at least %d", n, QuizOptions),
			})
		}
	}
	return issues
}

// Quizzable reports whether a quiz can be generated for the lesson.
func Quizzable(l Lesson) bool {
	return len(DistinctTranslations(l.Vocab)) >= QuizOptions
}
