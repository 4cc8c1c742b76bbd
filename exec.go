package figures

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/figures/utils"
	"golang.org/x/term"
)

// Ops holds the command line destinations.
type Ops struct {
	Dst, PipeName string
	ConfigPath    string
}

// Execute draws the selected pack and saves it to the destination, if any.
// In case the preview mode is activated it opens a window afterwards and
// returns once the window is dismissed. The window loop must run on the
// main goroutine, so Execute should be called from main.
func (p *Processor) Execute(op *Ops) {
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ FIGURES", utils.StatusMessage),
		utils.DecorateText("⇢ drawing the figures...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	if op.ConfigPath != "" {
		cfg, err := op.loadConfig()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the layout configuration: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		p.Config = cfg
	}

	now := time.Now()

	if op.Dst != "" {
		format := "png"
		if op.Dst != op.PipeName {
			ext := filepath.Ext(op.Dst)
			f, err := normalizeFormat(ext)
			if err != nil || ext == "" {
				log.Fatal(utils.DecorateText(fmt.Sprintf("%q file type not supported", ext), utils.ErrorMessage))
			}
			format = f
		}
		err := op.process(p, op.Dst, format)
		op.printOpStatus(op.Dst, err)

		fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}

	if p.Preview {
		if err := p.showPreview(); err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to open the preview window: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
}

// loadConfig reads the layout either from a local file or from an URL.
func (op *Ops) loadConfig() (Config, error) {
	path := op.ConfigPath
	if utils.IsValidUrl(path) {
		f, err := utils.DownloadFile(path)
		if f != nil {
			defer os.Remove(f.Name())
			defer f.Close()
		}
		if err != nil {
			return Config{}, err
		}
		return DecodeConfig(f)
	}
	return LoadConfig(path)
}

// process renders the figures into the destination and returns the error in case exists.
func (op *Ops) process(p *Processor, out, format string) error {
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ FIGURES", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the figures have been drawn successfully ✔", utils.SuccessMessage),
	)

	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ FIGURES", utils.StatusMessage),
		utils.DecorateText("drawing the figures failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	dst, err := op.pathToFile(out)
	if err != nil {
		return err
	}

	// Start the progress indicator.
	p.Spinner.Start()

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-done:
			return
		case <-signalChan:
		}
		p.Spinner.RestoreCursor()
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			os.Remove(f.Name())
		}
		os.Exit(1)
	}()

	file, isFile := dst.(*os.File)
	if isFile && file != os.Stdout {
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}()
	}

	if err = p.Process(dst, format); err != nil {
		// remove the generated file in case of an error
		if isFile && file != os.Stdout {
			os.Remove(file.Name())
		}
		p.Spinner.StopMsg = errorMsg
	} else {
		p.Spinner.StopMsg = successMsg
	}
	// Stop the progress indicator.
	p.Spinner.Stop()

	return err
}

// pathToFile converts the destination path to a writable file.
func (op *Ops) pathToFile(out string) (io.Writer, error) {
	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

// printOpStatus displays the relevant information about the drawing process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError drawing the figures: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe figures have been saved as: %s %s\n\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
