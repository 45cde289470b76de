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
	"os"

	"github.com/spf13/cobra"
	"github.com/veiltext/veil/helpers"
	"github.com/veiltext/veil/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Veil - Encrypts and decrypts alphanumeric text using classical ciphers",
	Long:  "Veil - Encrypts and decrypts alphanumeric text using classical ciphers",
	Run: func(cmd *cobra.Command, args []string) {
		if len(os.Args) == 1 && !helpers.CheckIsPiped() {
			_ = cmd.Help()
			return
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			helpers.ExitCode = helpers.ExitCodePanicInExecute
			// honor the no output concept for piping relating to critical errors as well
			if !helpers.CmdHelpers.OutputValueOnly {
				fmt.Printf("Panic recovered in cmd.Execute(): %s\n", r)
			}
		}
	}()

	err := rootCmd.Execute()
	if err != nil {
		helpers.ExitCode = helpers.ExitCodeErrorReturnedToExecute
	}
}

func init() {
	cmd := GetRootCmd()

	cmd.PersistentFlags().BoolVarP(&helpers.CmdHelpers.OutputValueOnly, "output-only", "v", false, "Only print necessary output.  This is usually for removing extraneous characters\nwhen piping output to another process.")
	cmd.PersistentFlags().BoolVarP(&logger.LogDebug, "log-debug", "g", false, "Enables debug logging output")
	cmd.PersistentFlags().BoolVarP(&logger.LogTime, "log-time", "", false, "Adds time to debug lines.  Only relevant if debug output is enabled with \"--log-debug\"")
	cmd.PersistentFlags().BoolVarP(&logger.LogDebugVerbose, "log-debug-verbose", "", false, "Enables output of detailed debug information.")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
