package i18n

// translations holds every message per language.  Placeholders are %s and
// must appear the same number of times in each language.
var translations = map[Lang]map[Key]string{
	English: {
		KeyLanguageName: "English",

		KeyScenarioBalanced:  "Balanced",
		KeyScenarioDeveloper: "Developer",
		KeyScenarioCreative:  "Creative",
		KeyScenarioDaily:     "Daily use",

		KeyTypeLaptop:  "Laptop",
		KeyTypeDesktop: "Desktop",
		KeyTypeTablet:  "Tablet",

		KeyColName:   "Model",
		KeyColChip:   "Chip",
		KeyColYear:   "Year",
		KeyColScore:  "Score",
		KeyColTier:   "Tier",
		KeyColValue:  "Value",
		KeyColPrice:  "Price",
		KeyColSingle: "Single-core",
		KeyColMulti:  "Multi-core",
		KeyColGPU:    "GPU",
		KeyColMemory: "Memory",

		KeyCompareWinner: "Winner",
		KeyCompareTie:    "Tie",

		KeyEstimateTradeIn:     "Trade-in value",
		KeyEstimateRefurbished: "Refurbished price",

		KeyAdvisorIntro:      "Top picks for %s:",
		KeyAdvisorBudget:     "Budget: up to %s.",
		KeyAdvisorDeviceType: "Device type: %s.",
		KeyAdvisorPick:       "**%s** (%s): score %s, tier %s, %s",
		KeyAdvisorBestValue:  "Best value: **%s** with a value ratio of %s.",
		KeyAdvisorNoMatch:    "Nothing in the current list fits that budget and device type. Try widening the filters.",
		KeyAdvisorEmpty:      "The current list is empty. Clear some filters and ask again.",
		KeyAdvisorOffline:    "_Offline advice based on the listed benchmarks._",
		KeyAdvisorSystem:     "You are a Mac buying advisor. Answer in %s using Markdown. Recommend only machines from the list below.",
	},
	Chinese: {
		KeyLanguageName: "简体中文",

		KeyScenarioBalanced:  "均衡",
		KeyScenarioDeveloper: "开发",
		KeyScenarioCreative:  "创作",
		KeyScenarioDaily:     "日常使用",

		KeyTypeLaptop:  "笔记本",
		KeyTypeDesktop: "台式机",
		KeyTypeTablet:  "平板",

		KeyColName:   "型号",
		KeyColChip:   "芯片",
		KeyColYear:   "年份",
		KeyColScore:  "得分",
		KeyColTier:   "等级",
		KeyColValue:  "性价比",
		KeyColPrice:  "价格",
		KeyColSingle: "单核",
		KeyColMulti:  "多核",
		KeyColGPU:    "图形",
		KeyColMemory: "内存",

		KeyCompareWinner: "胜出",
		KeyCompareTie:    "持平",

		KeyEstimateTradeIn:     "折抵价值",
		KeyEstimateRefurbished: "翻新价格",

		KeyAdvisorIntro:      "%s 场景推荐：",
		KeyAdvisorBudget:     "预算：不超过 %s。",
		KeyAdvisorDeviceType: "设备类型：%s。",
		KeyAdvisorPick:       "**%s**（%s）：得分 %s，等级 %s，%s",
		KeyAdvisorBestValue:  "最具性价比：**%s**，性价比 %s。",
		KeyAdvisorNoMatch:    "当前列表中没有符合该预算和设备类型的机型，请放宽筛选条件。",
		KeyAdvisorEmpty:      "当前列表为空，请清除部分筛选条件后再提问。",
		KeyAdvisorOffline:    "_离线建议，基于列表中的跑分数据。_",
		KeyAdvisorSystem:     "你是一名 Mac 选购顾问。请使用 %s 并以 Markdown 格式回答，只推荐下方列表中的机型。",
	},
	Spanish: {
		KeyLanguageName: "Español",

		KeyScenarioBalanced:  "Equilibrado",
		KeyScenarioDeveloper: "Desarrollo",
		KeyScenarioCreative:  "Creativo",
		KeyScenarioDaily:     "Uso diario",

		KeyTypeLaptop:  "Portátil",
		KeyTypeDesktop: "Sobremesa",
		KeyTypeTablet:  "Tableta",

		KeyColName:   "Modelo",
		KeyColChip:   "Chip",
		KeyColYear:   "Año",
		KeyColScore:  "Puntuación",
		KeyColTier:   "Nivel",
		KeyColValue:  "Valor",
		KeyColPrice:  "Precio",
		KeyColSingle: "Un núcleo",
		KeyColMulti:  "Multinúcleo",
		KeyColGPU:    "GPU",
		KeyColMemory: "Memoria",

		KeyCompareWinner: "Ganador",
		KeyCompareTie:    "Empate",

		KeyEstimateTradeIn:     "Valor de recompra",
		KeyEstimateRefurbished: "Precio reacondicionado",

		KeyAdvisorIntro:      "Mejores opciones para %s:",
		KeyAdvisorBudget:     "Presupuesto: hasta %s.",
		KeyAdvisorDeviceType: "Tipo de dispositivo: %s.",
		KeyAdvisorPick:       "**%s** (%s): puntuación %s, nivel %s, %s",
		KeyAdvisorBestValue:  "Mejor relación calidad-precio: **%s** con un valor de %s.",
		KeyAdvisorNoMatch:    "Nada en la lista actual encaja con ese presupuesto y tipo de dispositivo. Prueba a ampliar los filtros.",
		KeyAdvisorEmpty:      "La lista actual está vacía. Quita algunos filtros y vuelve a preguntar.",
		KeyAdvisorOffline:    "_Consejo sin conexión basado en las pruebas listadas._",
		KeyAdvisorSystem:     "Eres un asesor de compra de Mac. Responde en %s usando Markdown. Recomienda solo equipos de la lista siguiente.",
	},
}

//Personal.AI order the ending
