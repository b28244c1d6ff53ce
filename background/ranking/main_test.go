package ranking

import (
	"os"
	"testing"

	"github.com/spf13/viper"

	"github.com/sagip-ph/sagip-api/mocks"
	"github.com/sagip-ph/sagip-api/utils"
)

var testWorker *RankingWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	viper.Set("i18n.dir", "../../i18n") // escalation messages are localized
	utils.InitI18NBundle()

	testWorker = NewRankingWorker("test", mongoMock)
	testWorker.Register()
	os.Exit(m.Run())
}
