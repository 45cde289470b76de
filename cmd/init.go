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

	"github.com/spf13/cobra"
	"github.com/veiltext/veil/env"
	"github.com/veiltext/veil/helpers"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a settings file with default values in your user config dir",
	Long:  "Creates a settings file with default values in your user config dir",
	Run: func(cmd *cobra.Command, args []string) {
		err := env.InitializeEnvironment()
		if err != nil {
			printCmdError(fmt.Sprintf("Failure initializing environment%s", helpers.FormatErrorOutputs(err)))
			helpers.ExitCode = helpers.ExitCodeStartupFailure
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
