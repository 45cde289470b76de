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

package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/veiltext/veil/helpers"
)

// InitializeEnvironment writes a fresh settings file with the built-in
// defaults.  If a settings file already exists, the user is asked before it
// is replaced.
func InitializeEnvironment() error {
	configPath, err := helpers.GetConfigPath()
	if err != nil {
		return err
	}

	configFilePath := filepath.Join(configPath, helpers.VeilConfigFileName)
	if _, err = os.Stat(configFilePath); err == nil {
		if !helpers.IsInteractiveTerminal() {
			return fmt.Errorf("settings file already exists at %s", configFilePath)
		}

		fmt.Printf("A settings file already exists at %s\n", configFilePath)
		inputVal, err := helpers.GetYesNoInput("Do you wish to replace it with default settings?", helpers.InputResponseValNo)
		if err != nil {
			return fmt.Errorf("failed during input of replace confirmation: %w", err)
		}

		if inputVal == helpers.InputResponseValNo {
			return fmt.Errorf("user declined to replace the current settings file")
		}
	}

	fmt.Println("Saving default settings...")
	ch := helpers.NewConfigHelperFromConfig(helpers.NewDefaultConfig())
	err = ch.WriteConfig()
	if err != nil {
		return fmt.Errorf("unable to write out settings file: %w", err)
	}

	fmt.Printf("Settings saved to %s\n", configFilePath)
	return nil
}
