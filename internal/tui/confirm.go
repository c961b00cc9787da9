package tui

type confirmModel struct {
	message string
	// productID is the product the pending answer applies to.
	productID string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
