/*
Package progress renders a live single-line progress display for counting
runs. It reads snapshots of the counter's statistics on a fixed refresh rate
and draws them with a spinner or plain text, falling back gracefully when
stdout is not a terminal.
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/marcoimbee/pyloc/pkg/logger"
)

type progress struct {
	config Config
	log    logger.Logger
	writer io.Writer

	status    Status
	startTime time.Time
	message   string
	isActive  bool

	renderer renderer

	mu       sync.Mutex
	stopChan chan struct{}
	doneChan chan struct{}
}

// New creates a new progress visualization instance
func New(config Config, log logger.Logger) Progress {
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}

	p := &progress{
		config: config,
		log:    log,
		writer: os.Stdout,
	}
	p.renderer = p.createRenderer()

	p.log.WithFields(logger.Fields{
		"style":     config.Style,
		"showStats": config.ShowStats,
		"noColor":   config.NoColor,
		"refresh":   config.RefreshRate,
	}).Debug("Created new progress instance")

	return p
}

func (p *progress) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isActive {
		return
	}

	p.message = message
	p.startTime = time.Now()
	p.isActive = true
	p.stopChan = make(chan struct{})
	p.doneChan = make(chan struct{})

	go p.renderLoop()
}

func (p *progress) Update(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
}

func (p *progress) Complete(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.message = message
	if p.isActive {
		p.render()
		if p.config.HideAfterComplete {
			p.clearLine()
		} else {
			fmt.Fprintln(p.writer)
		}
	}
	p.stopLocked()
}

func (p *progress) Error(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.message = message
	if p.isActive {
		p.render()
		fmt.Fprintln(p.writer)
	}
	p.stopLocked()
}

func (p *progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.clearLine()
}

func (p *progress) IsSupportedTerminal() bool {
	if f, ok := p.writer.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// stopLocked halts the render loop; the caller must hold the mutex.
func (p *progress) stopLocked() {
	if !p.isActive {
		return
	}
	p.isActive = false
	close(p.stopChan)

	p.mu.Unlock()
	<-p.doneChan
	p.mu.Lock()
}

func (p *progress) renderLoop() {
	ticker := time.NewTicker(p.config.RefreshRate)
	defer ticker.Stop()
	defer close(p.doneChan)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.isActive {
				p.render()
			}
			p.mu.Unlock()
		}
	}
}

func (p *progress) render() {
	output := p.renderer.render(p.status, p.message, p.calculateStats())
	p.clearLine()
	fmt.Fprint(p.writer, output)
}

func (p *progress) clearLine() {
	if p.IsSupportedTerminal() {
		fmt.Fprint(p.writer, "\r\033[K")
	} else {
		fmt.Fprint(p.writer, "\r")
	}
}

func (p *progress) calculateStats() Statistics {
	elapsed := time.Since(p.startTime)

	stats := Statistics{
		ElapsedTime: elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		stats.FilesPerSecond = float64(p.status.FilesCounted) / secs
		stats.LinesPerSecond = float64(p.status.LinesCounted) / secs
	}

	return stats
}

func (p *progress) createRenderer() renderer {
	switch p.config.Style {
	case StyleSpinner:
		return &spinnerRenderer{
			noColor:   p.config.NoColor,
			showStats: p.config.ShowStats,
		}
	default:
		return &simpleRenderer{
			noColor:   p.config.NoColor,
			showStats: p.config.ShowStats,
		}
	}
}
