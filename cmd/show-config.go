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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/veiltext/veil/bootstrap"
	"github.com/veiltext/veil/helpers"
)

// showConfigCmd represents the show-config command
var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Prints the resolved settings and where they were loaded from",
	Long:  "Prints the resolved settings and where they were loaded from",
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}

func showConfig() {
	if err := bootstrap.Run(); err != nil {
		printCmdError(fmt.Sprintf("Failure loading veil settings%s", helpers.FormatErrorOutputs(err)))
		helpers.ExitCode = helpers.ExitCodeStartupFailure
		return
	}

	configPath, err := helpers.GetConfigPath()
	if err != nil {
		printCmdError(fmt.Sprintf("Failure resolving config path%s", helpers.FormatErrorOutputs(err)))
		helpers.ExitCode = helpers.ExitCodeStartupFailure
		return
	}

	fmt.Println("")
	fmt.Printf("Settings file  : %s\n", filepath.Join(configPath, helpers.VeilConfigFileName))
	fmt.Printf("Default cipher : %s\n", helpers.GlobalConfig.Config.DefaultCipher)
	fmt.Printf("Worker count   : %d\n", helpers.GlobalConfig.Config.WorkerCount)
	fmt.Println("")
}
