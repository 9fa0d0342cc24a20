package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/flow"
	"github.com/jask/hanzicards/internal/quiz"
)

const (
	labelPrev        = "ก่อนหน้า"
	labelNext        = "ถัดไป"
	labelReady       = "พร้อมทำแบบทดสอบ"
	labelFlip        = "พลิกการ์ด"
	labelAudio       = "ฟังเสียง"
	labelLoading     = "กำลังโหลดบทเรียน…"
	labelLoadFailed  = "โหลดข้อมูลบทเรียนไม่สำเร็จ"
	labelNoMatches   = "ไม่พบบทเรียน"
	labelScoreHeader = "คะแนนของคุณ"
)

func (m Model) View() string {
	header := renderHeader(appName, m.crumb(), m.width)

	var body string
	switch m.state.Screen {
	case flow.ScreenLoading:
		body = m.renderSection("บทเรียน", m.spinner.View()+" "+statusStyle.Render(labelLoading))
	case flow.ScreenFailed:
		body = m.failedView()
	case flow.ScreenHome:
		body = m.homeView()
	case flow.ScreenFlashcard:
		body = m.flashcardView()
	case flow.ScreenQuiz:
		body = m.quizView()
	case flow.ScreenResult:
		body = m.resultView()
	}

	return m.placeWithFooter(header+"\n\n"+body, m.renderStatus(), m.renderFooter())
}

func (m Model) crumb() string {
	switch m.state.Screen {
	case flow.ScreenFlashcard:
		return m.state.Session.Title
	case flow.ScreenQuiz:
		return m.state.Session.Title + " · แบบทดสอบ"
	case flow.ScreenResult:
		return m.state.Session.Title + " · ผลลัพธ์"
	}
	return ""
}

// ---------------------------------------------------------------------------
// Screens
// ---------------------------------------------------------------------------

func (m Model) failedView() string {
	msg := titleStyle.Foreground(colorError).Render("⚠ "+labelLoadFailed) + "\n\n" +
		statusStyle.Render(truncate(fmt.Sprint(m.state.LoadErr), m.sectionContentWidth())) + "\n\n" +
		mutedStyle.Render("กด q เพื่อออก")
	alert := alertStyle.Render(msg)
	if m.width == 0 {
		return alert
	}
	return lipgloss.Place(m.width, lipgloss.Height(alert), lipgloss.Center, lipgloss.Top, alert)
}

func (m Model) homeView() string {
	lessons := m.state.Catalog.Lessons
	w := m.sectionContentWidth()

	var lines []string
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View(), "")
	}
	if len(m.visible) == 0 {
		lines = append(lines, mutedStyle.Render(labelNoMatches))
	}
	for i, idx := range m.visible {
		l := lessons[idx]
		prefix := "  "
		title := truncate(l.Title, max(8, w-20))
		row := fmt.Sprintf("%2d. %s", l.ID, title)
		if i == m.lessonCursor {
			prefix = cursorStyle.Render("> ")
			row = selectedStyle.Render(row)
		}
		meta := mutedStyle.Render(fmt.Sprintf(" · %d คำ", len(l.Vocab)))
		if !catalog.Quizzable(l) {
			meta += lipgloss.NewStyle().Foreground(colorWarning).Render(" · ไม่มีแบบทดสอบ")
		}
		lines = append(lines, prefix+row+meta)
	}

	if len(m.visible) > 0 {
		cur := lessons[m.visible[m.lessonCursor]]
		if ref, ok := imageRef(m.deps.ImageDir, cur.Image); ok {
			lines = append(lines, "", imageStyle.Render("🖼  "+truncate(ref, w-4)))
		}
		lines = append(lines, scrollStyle.Render(fmt.Sprintf("── %d จาก %d บทเรียน ──", len(m.visible), len(lessons))))
	}
	return m.renderSection("บทเรียน", strings.Join(lines, "\n"))
}

func (m Model) flashcardView() string {
	st := m.state
	s := st.Session
	card := s.Card()
	w := m.sectionContentWidth()

	var face string
	style := cardStyle
	if s.Flipped {
		style = cardBackStyle
		face = pronunciationStyle.Render(card.Pronunciation) + "\n\n" + translationStyle.Render(card.Translation)
	} else {
		face = termStyle.Render(card.Term)
	}
	cardBox := style.Width(min(40, w)).Render(face)

	lines := []string{
		mutedStyle.Render(fmt.Sprintf("บัตรคำ %d/%d", s.Index+1, len(s.Vocab))),
		"",
		cardBox,
	}
	if ref, ok := imageRef(m.deps.ImageDir, card.Image); ok {
		lines = append(lines, imageStyle.Render("🖼  "+truncate(ref, w-4)))
	}

	controls := []string{renderControl("h", labelPrev, st.PrevEnabled())}
	if st.AtLastCard() {
		controls = append(controls, renderControl("t", labelReady, true))
	} else {
		controls = append(controls, renderControl("l", labelNext, true))
	}
	controls = append(controls,
		renderControl("space", labelFlip, true),
		renderControl("a", labelAudio, true),
		renderControl("esc", quiz.LabelBackHome, true),
	)
	lines = append(lines, "", strings.Join(controls, "   "))
	return m.renderSection(s.Title, strings.Join(lines, "\n"))
}

func (m Model) quizView() string {
	st := m.state
	run := st.Quiz
	q := run.Question
	w := m.sectionContentWidth()

	done := run.Index
	if run.Answered() {
		done++
	}
	bar := m.progress.ViewAs(float64(done)/float64(max(1, run.Total()))) +
		mutedStyle.Render(fmt.Sprintf("  คำถาม %d/%d", run.Index+1, run.Total()))

	lines := []string{
		bar,
		"",
		termStyle.Render(q.Term) + "  " + pronunciationStyle.Render(q.Pronunciation),
		"",
	}
	for i, opt := range q.Options {
		prefix := "  "
		if !run.Answered() && i == m.optionCursor {
			prefix = cursorStyle.Render("> ")
		}
		label := fmt.Sprintf("%d. %s", i+1, truncate(opt, w-6))
		style := optionStyle
		if run.Answered() {
			switch run.Outcome.Marks[i] {
			case quiz.MarkCorrect:
				style = optionCorrectStyle
				label += " ✓"
			case quiz.MarkWrong:
				style = optionWrongStyle
				label += " ✗"
			default:
				style = mutedStyle
			}
		}
		lines = append(lines, prefix+style.Render(label))
	}

	if run.Answered() {
		fb := feedbackOKStyle
		if !run.Outcome.Correct {
			fb = feedbackBadStyle
		}
		lines = append(lines, "", fb.Render(run.Outcome.Feedback), "")
		controls := []string{renderControl("n", st.AdvanceLabel(), true)}
		if st.ShowHomeControl() {
			controls = append(controls, renderControl("esc", quiz.LabelBackHome, true))
		}
		lines = append(lines, strings.Join(controls, "   "))
	}
	return m.renderSection(st.Session.Title, strings.Join(lines, "\n"))
}

func (m Model) resultView() string {
	st := m.state
	lines := []string{
		titleStyle.Render(labelScoreHeader),
		"",
		scoreStyle.Render(st.ScoreText()),
		"",
		renderControl("r", quiz.LabelReview, true) + "   " + renderControl("esc", quiz.LabelBackHome, true),
	}
	return m.renderSection(st.Session.Title, strings.Join(lines, "\n"))
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(name, crumb string, width int) string {
	content := headerAppStyle.Render(name)
	if crumb != "" {
		content += headerCrumbStyle.Render("  ›  " + crumb)
	}
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(truncate(content, width-4))
}

func renderControl(key, label string, enabled bool) string {
	if !enabled {
		return controlDisabledStyle.Render("[" + key + "] " + label)
	}
	return controlKeyStyle.Render("["+key+"]") + " " + controlLabelStyle.Render(label)
}

func (m Model) sectionWidth() int {
	if m.width <= 0 {
		return 72
	}
	return max(24, min(m.width-4, 72))
}

func (m Model) sectionContentWidth() int {
	// border and padding take two cells a side
	return m.sectionWidth() - 4
}

func (m Model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(truncate(title, contentWidth)), contentWidth)
	separator := lipgloss.NewStyle().Foreground(colorSurface2).Render(strings.Repeat("─", contentWidth))
	section := listBoxStyle.Width(m.sectionWidth()).Render(header + "\n" + separator + "\n" + content)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m Model) renderFooter() string {
	content := m.help.ShortHelpView(m.keys.HelpBindings(m.scope()))
	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m Model) renderStatus() string {
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	flat := strings.ReplaceAll(m.status, "\n", " ")
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(truncate(flat, m.width-4))
}

func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(1, m.height-2)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines keep stale cells from the previous frame from showing.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}
