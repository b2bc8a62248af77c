package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/ditherart/internal/diag"
	"github.com/koki-develop/ditherart/internal/imageproc"
	"github.com/koki-develop/ditherart/internal/kernel"
	"github.com/koki-develop/ditherart/internal/render"
)

const thresholdStep = 0.05

type Option struct {
	Path    string
	Options render.Options
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}

	if m.err != nil {
		return m.err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	err error

	spinner spinner.Model
	keys    keyMap

	path    string
	img     image.Image
	opts    render.Options
	kernels []string
	kernel  int

	state        modelState
	windowHeight int
	windowWidth  int
}

func newModel(opt *Option) *model {
	opts := opt.Options
	opts.Algorithm = render.AlgorithmKernel

	kernels := kernel.Names()
	current := 0
	for i, name := range kernels {
		if strings.EqualFold(name, opts.Kernel) {
			current = i
		}
	}
	opts.Kernel = kernels[current]

	return &model{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:    defaultKeyMap(),

		path:    opt.Path,
		opts:    opts,
		kernels: kernels,
		kernel:  current,
	}
}

func (m *model) Init() tea.Cmd {
	m.state = modelStateLoading
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return m.loadingView()
	case modelStateReady:
		return m.readyView()
	}

	return ""
}

func (m *model) loadingView() string {
	return m.spinner.View() + " loading " + m.path
}

func (m *model) readyView() string {
	art, warning := m.currentArtView()
	return art + "\n" + m.statusView(warning) + "\n" + m.helpView()
}

func (m *model) currentArtView() (string, string) {
	if m.windowWidth <= 2 || m.windowHeight <= 4 {
		return "", ""
	}

	opts := m.opts
	sz := m.img.Bounds()
	opts.Width, opts.Height = render.FitSize(opts.Type, sz.Dx(), sz.Dy(), m.windowWidth-2, m.windowHeight-4)

	rec := &diag.Recorder{}
	r, err := render.New(opts, rec)
	if err != nil {
		return err.Error(), ""
	}
	lines, err := r.Lines(m.img)
	if err != nil {
		return err.Error(), ""
	}

	width := 0
	if len(lines) > 0 {
		width = len([]rune(lines[0]))
	}
	leftPad := strings.Repeat(" ", max(0, (m.windowWidth-width)/2))
	b := new(strings.Builder)
	for _, line := range lines {
		b.WriteString(leftPad)
		b.WriteString(line)
		b.WriteString("\n")
	}

	warning := ""
	if rec.Len() > 0 {
		warning = rec.Messages[rec.Len()-1]
	}
	return b.String(), warning
}

func (m *model) statusView(warning string) string {
	status := fmt.Sprintf("%s  %s  %s  threshold %.2f", m.opts.Type, m.opts.Kernel, m.opts.Policy, m.opts.Threshold)
	if warning != "" {
		status += "  " + color.New(color.FgYellow).Sprint(warning)
	}
	return status
}

func (m *model) helpView() string {
	b := new(strings.Builder)
	for i, k := range m.keys.bindings() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(color.New(color.BgGreen, color.FgBlack).Sprintf(" %s ", k.Help().Key))
		b.WriteString(" ")
		b.WriteString(k.Help().Desc)
	}
	return b.String()
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateReady   modelState = "ready"
)

type errMsg struct{ error }
type loadMsg struct {
	img image.Image
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.state != modelStateReady:
			return m, nil
		case key.Matches(msg, m.keys.Kernel):
			m.kernel = (m.kernel + 1) % len(m.kernels)
			m.opts.Kernel = m.kernels[m.kernel]
		case key.Matches(msg, m.keys.Policy):
			if m.opts.Policy == render.PolicyOnOff {
				m.opts.Policy = render.PolicyInterpolate
			} else {
				m.opts.Policy = render.PolicyOnOff
			}
		case key.Matches(msg, m.keys.Raise):
			m.opts.Threshold = min(1-thresholdStep, m.opts.Threshold+thresholdStep)
		case key.Matches(msg, m.keys.Lower):
			m.opts.Threshold = max(thresholdStep, m.opts.Threshold-thresholdStep)
		case key.Matches(msg, m.keys.Braille):
			if m.opts.Type == render.TypeText {
				m.opts.Type = render.TypeBraille
			} else {
				m.opts.Type = render.TypeText
			}
		}
		return m, nil

	case errMsg:
		m.err = msg.error
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
		return m, nil

	case loadMsg:
		m.img = msg.img
		m.state = modelStateReady
		return m, tea.EnterAltScreen

	case spinner.TickMsg:
		if m.state != modelStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) load() tea.Cmd {
	return func() tea.Msg {
		img, err := imageproc.Load(m.path)
		if err != nil {
			return errMsg{err}
		}
		return loadMsg{img}
	}
}
