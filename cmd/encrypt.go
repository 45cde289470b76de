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
	"github.com/spf13/cobra"
	"github.com/veiltext/veil/cipher"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypts alphanumeric text using the selected classical cipher and key",
	Long:  "Encrypts alphanumeric text using the selected classical cipher and key",
	Run: func(cmd *cobra.Command, args []string) {
		runCipherRequest(cipher.ModeEncrypt, localEncryptCommandVals)
	},
}

var localEncryptCommandVals = &cipherCommandVals{}

func init() {
	rootCmd.AddCommand(encryptCmd)
	addCipherFlags(encryptCmd, localEncryptCommandVals)
}
