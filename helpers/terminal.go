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

package helpers

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type InputResponseVal int

const (
	InputResponseValNull InputResponseVal = iota
	InputResponseValYes
	InputResponseValNo
)

// IsInteractiveTerminal reports whether stdin is attached to a real terminal,
// as opposed to a pipe or redirected file.  Prompting only makes sense when
// this is true.
func IsInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func GetConsoleInputLine(promptText string) (inputLine string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error reading input: %s", r)
		}
	}()

	if promptText != "" {
		fmt.Printf("%s: ", promptText)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	err = scanner.Err()
	if err != nil {
		return "", err
	}

	return scanner.Text(), nil
}

// GetYesNoInput prompts until the user answers y or n.  An empty answer
// returns defaultVal.
func GetYesNoInput(promptText string, defaultVal InputResponseVal) (InputResponseVal, error) {
	defaultText := "y/N"
	if defaultVal == InputResponseValYes {
		defaultText = "Y/n"
	}

	for {
		inputLine, err := GetConsoleInputLine(fmt.Sprintf("%s (%s)", promptText, defaultText))
		if err != nil {
			return InputResponseValNull, err
		}

		switch strings.ToLower(strings.TrimSpace(inputLine)) {
		case "":
			return defaultVal, nil
		case "y", "yes":
			return InputResponseValYes, nil
		case "n", "no":
			return InputResponseValNo, nil
		}

		fmt.Println("Please answer y or n")
	}
}
