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

package bootstrap

import (
	"fmt"

	"github.com/veiltext/veil/helpers"
	"github.com/veiltext/veil/logger"
)

// Run loads the user settings file into helpers.GlobalConfig before a command
// starts doing real work.  Commands that never touch settings skip this.
func Run() error {
	helpers.GlobalConfig = helpers.NewConfigHelper()
	err := helpers.GlobalConfig.LoadConfig()
	if err != nil {
		return fmt.Errorf("unable to load config during startup: %w", err)
	}

	logger.Debugf("bootstrap: settings loaded, defaultCipher=%s workerCount=%d\n",
		helpers.GlobalConfig.Config.DefaultCipher,
		helpers.GlobalConfig.Config.WorkerCount)

	return nil
}
