// Copyright 2026 The Veil Authors
//
// Use of this source code is governed by an MIT license that is located
// in this project's root folder, and can also be found online at:
//
// https://github.com/veiltext/veil/LICENSE
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/veiltext/veil/bootstrap"
	"github.com/veiltext/veil/cipher"
	"github.com/veiltext/veil/engine"
	"github.com/veiltext/veil/helpers"
	"github.com/veiltext/veil/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// cipherCommandVals carries the flag values shared by the encrypt and
// decrypt commands.
type cipherCommandVals struct {
	// cipherName should be one of: caesar, playfair or vigenere.
	// When empty, the configured default cipher is used.
	cipherName string

	// keyText is the raw key string.  Validation is owned by the chosen
	// cipher variant.
	keyText string

	// inputFilePath is the name of a file to use as input.  Stdin or a
	// console prompt is used when empty.
	inputFilePath string

	// outputFilePath is the name of a file to use for output.  Stdout is
	// used when empty.
	outputFilePath string

	// useClipboardIn reads the input text from the system clipboard
	useClipboardIn bool

	// useClipboardOut writes the result to the system clipboard
	useClipboardOut bool

	// workerCount overrides the configured worker count when > 0
	workerCount int
}

func addCipherFlags(cipherCmd *cobra.Command, vals *cipherCommandVals) {
	cipherCmd.Flags().StringVarP(&vals.cipherName, "cipher", "c", "", "The cipher to use.  Should be one of: caesar, playfair or vigenere.  The configured default is used if not supplied.")
	cipherCmd.Flags().StringVarP(&vals.keyText, "key", "k", "", "The cipher key.  For caesar, a null key (no encryption) is used if not supplied.")
	cipherCmd.Flags().StringVarP(&vals.inputFilePath, "input-file", "i", "", "The name of a file to use for input.  Stdin is used if not supplied.")
	cipherCmd.Flags().StringVarP(&vals.outputFilePath, "output-file", "o", "", "The name of a file to use for output.  Stdout is used if not supplied.")
	cipherCmd.Flags().BoolVarP(&vals.useClipboardIn, "clipboard-in", "", false, "Read the input text from the system clipboard.")
	cipherCmd.Flags().BoolVarP(&vals.useClipboardOut, "clipboard-out", "", false, "Write the result to the system clipboard.")
	cipherCmd.Flags().IntVarP(&vals.workerCount, "workers", "w", 0, "The number of concurrent workers for chunked processing.  The configured default is used if not supplied.")
}

// runCipherRequest is the shared driver behind the encrypt and decrypt
// commands: resolve the cipher and key, acquire and normalize the input,
// run the chunked executor, then deliver the result.
func runCipherRequest(mode cipher.Mode, vals *cipherCommandVals) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Panic recovered in runCipherRequest(): %s\n", r)
			helpers.ExitCode = helpers.ExitCodePanicInExecute
		}
	}()

	if helpers.CmdHelpers.OutputValueOnly {
		logger.LogOutputOnly = true
	}

	if err := bootstrap.Run(); err != nil {
		printCmdError(fmt.Sprintf("Failure loading veil settings%s", helpers.FormatErrorOutputs(err)))
		helpers.ExitCode = helpers.ExitCodeStartupFailure
		return
	}

	cipherName := vals.cipherName
	if cipherName == "" {
		cipherName = helpers.GlobalConfig.Config.DefaultCipher
	}

	cipherType := cipher.TextToCipherType(cipherName)
	if cipherType == cipher.TypeUnknown {
		printCmdError(fmt.Sprintf("Unknown cipher %q.  Should be one of: caesar, playfair or vigenere.", cipherName))
		helpers.ExitCode = helpers.ExitCodeInvalidInput
		return
	}

	keyText := vals.keyText
	if keyText == "" && cipherType == cipher.TypeCaesar {
		// the identity key: zero rotation, so no encryption
		keyText = "0"
	}

	// No chunking or worker dispatch happens until this succeeds.
	ci, err := cipher.New(cipherType, keyText)
	if err != nil {
		var invalidKeyErr *cipher.InvalidKeyError
		if errors.As(err, &invalidKeyErr) {
			printCmdError(fmt.Sprintf("Invalid key%s", helpers.FormatErrorOutputs(err)))
		} else {
			printCmdError(fmt.Sprintf("Failure constructing cipher%s", helpers.FormatErrorOutputs(err)))
		}

		helpers.ExitCode = helpers.ExitCodeCipherError
		return
	}

	inputText, err := acquireInputText(vals)
	if err != nil {
		printCmdError(fmt.Sprintf("Unable to read input%s", helpers.FormatErrorOutputs(err)))
		helpers.ExitCode = helpers.ExitCodeInputError
		return
	}

	normalizedText := helpers.NormalizeText(inputText)
	logger.Debugf("normalized %d input bytes to %d symbols\n", len(inputText), len(normalizedText))

	workerCount := vals.workerCount
	if workerCount < 1 {
		workerCount = helpers.GlobalConfig.Config.WorkerCount
	}

	if workerCount < 1 {
		workerCount = engine.DefaultWorkerCount
	}

	exec := engine.NewExecutor(workerCount)

	var runSpinner *spinner.Spinner
	if vals.inputFilePath != "" && !helpers.CmdHelpers.OutputValueOnly {
		runSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		runSpinner.Suffix = fmt.Sprintf(" Running %s %s...", cipherType, mode)
		runSpinner.Start()
	}

	startTime := time.Now()
	outputText := exec.Run(normalizedText, ci, mode)
	totalTime := time.Now().Sub(startTime)

	if runSpinner != nil {
		runSpinner.Stop()
	}

	if err = deliverOutputText(outputText, vals); err != nil {
		printCmdError(fmt.Sprintf("Unable to write output%s", helpers.FormatErrorOutputs(err)))
		helpers.ExitCode = helpers.ExitCodeOutputError
		return
	}

	if !helpers.CmdHelpers.OutputValueOnly {
		p := message.NewPrinter(language.English)
		_, _ = p.Printf(
			"%s completed. Symbols processed: %d in %s.\n",
			strings.ToUpper(mode.String()),
			len(normalizedText),
			helpers.FormatDuration(totalTime),
		)
	}
}

func acquireInputText(vals *cipherCommandVals) (string, error) {
	if vals.useClipboardIn {
		data, err := helpers.ReadFromClipboard()
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	if vals.inputFilePath != "" {
		data, err := os.ReadFile(vals.inputFilePath)
		if err != nil {
			return "", fmt.Errorf("unable to read input file: %w", err)
		}

		return string(data), nil
	}

	if helpers.CheckIsPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read piped input: %w", err)
		}

		return string(data), nil
	}

	return helpers.GetConsoleInputLine("Enter text to process")
}

func deliverOutputText(outputText string, vals *cipherCommandVals) error {
	if vals.useClipboardOut {
		return helpers.WriteToClipboard([]byte(outputText))
	}

	if vals.outputFilePath != "" {
		err := os.WriteFile(vals.outputFilePath, []byte(outputText+"\n"), 0644)
		if err != nil {
			return fmt.Errorf("unable to write output file: %w", err)
		}

		return nil
	}

	logger.Output(outputText)
	return nil
}

func printCmdError(text string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("[error]"), text)
}
