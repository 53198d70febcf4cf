package i18n

// Key identifies a user-facing message.  The set is closed: every Key
// declared here has an entry in every language table.
type Key string

const (
	KeyLanguageName Key = "language.name"

	KeyScenarioBalanced  Key = "scenario.balanced"
	KeyScenarioDeveloper Key = "scenario.developer"
	KeyScenarioCreative  Key = "scenario.creative"
	KeyScenarioDaily     Key = "scenario.daily"

	KeyTypeLaptop  Key = "type.laptop"
	KeyTypeDesktop Key = "type.desktop"
	KeyTypeTablet  Key = "type.tablet"

	KeyColName   Key = "column.name"
	KeyColChip   Key = "column.chip"
	KeyColYear   Key = "column.year"
	KeyColScore  Key = "column.score"
	KeyColTier   Key = "column.tier"
	KeyColValue  Key = "column.value"
	KeyColPrice  Key = "column.price"
	KeyColSingle Key = "column.single"
	KeyColMulti  Key = "column.multi"
	KeyColGPU    Key = "column.gpu"
	KeyColMemory Key = "column.memory"

	KeyCompareWinner Key = "compare.winner"
	KeyCompareTie    Key = "compare.tie"

	KeyEstimateTradeIn     Key = "estimate.trade_in"
	KeyEstimateRefurbished Key = "estimate.refurbished"

	KeyAdvisorIntro      Key = "advisor.intro"
	KeyAdvisorBudget     Key = "advisor.budget"
	KeyAdvisorDeviceType Key = "advisor.device_type"
	KeyAdvisorPick       Key = "advisor.pick"
	KeyAdvisorBestValue  Key = "advisor.best_value"
	KeyAdvisorNoMatch    Key = "advisor.no_match"
	KeyAdvisorEmpty      Key = "advisor.empty"
	KeyAdvisorOffline    Key = "advisor.offline"
	KeyAdvisorSystem     Key = "advisor.system"
)

// Keys lists every Key.
var Keys = []Key{
	KeyLanguageName,
	KeyScenarioBalanced, KeyScenarioDeveloper, KeyScenarioCreative, KeyScenarioDaily,
	KeyTypeLaptop, KeyTypeDesktop, KeyTypeTablet,
	KeyColName, KeyColChip, KeyColYear, KeyColScore, KeyColTier, KeyColValue, KeyColPrice,
	KeyColSingle, KeyColMulti, KeyColGPU, KeyColMemory,
	KeyCompareWinner, KeyCompareTie,
	KeyEstimateTradeIn, KeyEstimateRefurbished,
	KeyAdvisorIntro, KeyAdvisorBudget, KeyAdvisorDeviceType, KeyAdvisorPick,
	KeyAdvisorBestValue, KeyAdvisorNoMatch, KeyAdvisorEmpty, KeyAdvisorOffline, KeyAdvisorSystem,
}

//Personal.AI order the ending
