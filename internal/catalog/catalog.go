// Package catalog holds the static localized content table for the
// support-intake conversation. Entries are fixed for process lifetime.
package catalog

import "strings"

// DefaultLanguage is used whenever a session has no language yet.
const DefaultLanguage = "en"

// Entry groups the templates and issue labels for one language.
type Entry struct {
	Start         string
	Welcome       string
	Issue         string
	Wallet        string
	Processing    string
	Operator      string
	Restart       string
	Back          string
	WalletTooLong string
	Ping          string
	Issues        []string
}

// Language describes a selectable language for the language menu.
type Language struct {
	Code  string
	Label string
	Name  string
}

// Languages lists supported languages in menu order.
var Languages = []Language{
	{Code: "en", Label: "🇬🇧 English", Name: "English"},
	{Code: "ru", Label: "🇷🇺 Русский", Name: "Русский"},
	{Code: "es", Label: "🇪🇸 Español", Name: "Español"},
	{Code: "zh", Label: "🇨🇳 中文", Name: "中文"},
	{Code: "fr", Label: "🇫🇷 Français", Name: "Français"},
}

// Get returns the catalog entry for a language code.
func Get(code string) (Entry, bool) {
	e, ok := entries[code]
	return e, ok
}

// MustGet returns the entry for code, falling back to the default language.
func MustGet(code string) Entry {
	if e, ok := entries[code]; ok {
		return e
	}
	return entries[DefaultLanguage]
}

// Supported reports whether a language code is part of the catalog.
func Supported(code string) bool {
	_, ok := entries[code]
	return ok
}

// LanguageName returns the display name for a language code.
func LanguageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// Fill substitutes the single named placeholder a template supports.
func Fill(template, placeholder, value string) string {
	return strings.ReplaceAll(template, "{"+placeholder+"}", value)
}

var entries = map[string]Entry{
	"en": {
		Start:         "<b>🍣 Sushi Help Center</b>\n\n👋 Hello, {name}! Welcome to our support bot.\nPlease choose your language:\n---\nUse /start to restart anytime.",
		Welcome:       "🌟 Thanks for choosing {lang_name}! Let's solve your issue.\n---\nPlease select the type of your issue:",
		Issue:         "Great! Please choose the type of your issue:",
		Wallet:        "📩 Please provide your wallet address:",
		Processing:    "🔄 Please wait... Processing your request.",
		Operator:      "❗️If you have any questions or need assistance, please contact our operator directly:\n\n👤 @sushi_helpcenter_06\nThey’ll help you faster and more efficiently.",
		Restart:       "🔁 Start over",
		Back:          "⬅️ Back",
		WalletTooLong: "⚠️ Wallet address is too long (max 100 characters). Please try again.",
		Ping:          "🏓 Bot is online!",
		Issues: []string{
			"1️⃣ 🔗 Wallet connection issue",
			"2️⃣ ⏳ Transaction stuck or failed",
			"3️⃣ 💸 Missing funds / wrong balance",
			"4️⃣ 🖼️ Token not displaying",
			"5️⃣ 🐞 Report a bug or leave feedback",
			"6️⃣ 📞 Contact operator",
		},
	},
	"ru": {
		Start:         "<b>🍣 Sushi Help Center</b>\n\n👋 Здравствуйте, {name}! Добро пожаловать в бота поддержки.\nВыберите язык:\n---\nИспользуйте /start для перезапуска.",
		Welcome:       "🌟 Спасибо за выбор языка ({lang_name})! Давай решим твою проблему.\n---\nВыбери тип проблемы:",
		Issue:         "Отлично! Выберите тип проблемы:",
		Wallet:        "📩 Пожалуйста, укажите адрес вашего кошелька:",
		Processing:    "🔄 Пожалуйста, подождите... Обрабатываем ваш запрос.",
		Operator:      "❗️Если у вас возникли вопросы или нужна помощь — свяжитесь с оператором лично:\n\n👤 @sushi_helpcenter_06\nОн подскажет и решит ваш вопрос быстрее.",
		Restart:       "🔁 Начать заново",
		Back:          "⬅️ Назад",
		WalletTooLong: "⚠️ Адрес кошелька слишком длинный (максимум 100 символов). Попробуйте снова.",
		Ping:          "🏓 Бот онлайн!",
		Issues: []string{
			"1️⃣ 🔗 Не подключается кошелёк",
			"2️⃣ ⏳ Транзакция зависла или обмен не прошёл",
			"3️⃣ 💸 Пропали средства / некорректный баланс",
			"4️⃣ 🖼️ Токен не отображается",
			"5️⃣ 🐞 Сообщить об ошибке или оставить отзыв",
			"6️⃣ 📞 Связаться с оператором",
		},
	},
	"es": {
		Start:         "<b>🍣 Sushi Help Center</b>\n\n👋 ¡Hola, {name}! Bienvenido al bot de soporte.\nSelecciona tu idioma:\n---\nUsa /start para reiniciar en cualquier momento.",
		Welcome:       "🌟 ¡Gracias por elegir {lang_name}! Vamos a resolver tu problema.\n---\nElige el tipo de problema:",
		Issue:         "¡Perfecto! Elige el tipo de problema:",
		Wallet:        "📩 Por favor, proporciona la dirección de tu billetera:",
		Processing:    "🔄 Espere por favor... Procesando su solicitud.",
		Operator:      "❗️Si tiene preguntas o necesita ayuda, comuníquese directamente con nuestro operador:\n\n👤 @sushi_helpcenter_06\nÉl te ayudará más rápido y eficazmente.",
		Restart:       "🔁 Empezar de nuevo",
		Back:          "⬅️ Volver",
		WalletTooLong: "⚠️ La dirección de la billetera es demasiado larga (máximo 100 caracteres). Inténtalo de nuevo.",
		Ping:          "🏓 ¡El bot está en línea!",
		Issues: []string{
			"1️⃣ 🔗 Problema de conexión de billetera",
			"2️⃣ ⏳ Transacción atascada o fallida",
			"3️⃣ 💸 Fondos desaparecidos / saldo incorrecto",
			"4️⃣ 🖼️ Token no visible",
			"5️⃣ 🐞 Informar error o dejar comentario",
			"6️⃣ 📞 Contactar con operador",
		},
	},
	"zh": {
		Start:         "<b>🍣 Sushi Help Center</b>\n\n👋 你好，{name}！欢迎使用我们的支持机器人。\n请选择您的语言：\n---\n随时使用 /start 重新开始。",
		Welcome:       "🌟 感谢选择 {lang_name}！让我们解决您的问题。\n---\n请选择您的问题类型：",
		Issue:         "很好！请选择您的问题类型：",
		Wallet:        "📩 请输入您的钱包地址：",
		Processing:    "🔄 请稍候... 正在处理您的请求。",
		Operator:      "❗️如有任何问题或需要帮助，请直接联系我们的客服人员：\n\n👤 @sushi_helpcenter_06\n他们会更快更有效地帮助您。",
		Restart:       "🔁 重新开始",
		Back:          "⬅️ 返回",
		WalletTooLong: "⚠️ 钱包地址过长（最多100个字符）。请重试。",
		Ping:          "🏓 机器人在线！",
		Issues: []string{
			"1️⃣ 🔗 钱包连接问题",
			"2️⃣ ⏳ 交易卡住或失败",
			"3️⃣ 💸 资金丢失 / 余额错误",
			"4️⃣ 🖼️ 代币未显示",
			"5️⃣ 🐞 报告错误或留下反馈",
			"6️⃣ 📞 联系客服",
		},
	},
	"fr": {
		Start:         "<b>🍣 Sushi Help Center</b>\n\n👋 Bonjour, {name} ! Bienvenue sur le bot de support.\nVeuillez choisir votre langue :\n---\nUtilisez /start pour redémarrer à tout moment.",
		Welcome:       "🌟 Merci d'avoir choisi {lang_name} ! Résolvons votre problème.\n---\nChoisissez le type de problème :",
		Issue:         "Parfait ! Choisissez le type de problème :",
		Wallet:        "📩 Veuillez fournir l'adresse de votre portefeuille :",
		Processing:    "🔄 Veuillez patienter... Traitement de votre demande.",
		Operator:      "❗️Si vous avez des questions ou besoin d’aide, contactez directement notre opérateur :\n\n👤 @sushi_helpcenter_06\nIl vous aidera plus rapidement et efficacement.",
		Restart:       "🔁 Recommencer",
		Back:          "⬅️ Retour",
		WalletTooLong: "⚠️ L'adresse du portefeuille est trop longue (maximum 100 caractères). Veuillez réessayer.",
		Ping:          "🏓 Le bot est en ligne !",
		Issues: []string{
			"1️⃣ 🔗 Problème de connexion au portefeuille",
			"2️⃣ ⏳ Transaction bloquée ou échouée",
			"3️⃣ 💸 Fonds manquants / solde incorrect",
			"4️⃣ 🖼️ Jeton non affiché",
			"5️⃣ 🐞 Signaler un bug ou donner un avis",
			"6️⃣ 📞 Contacter un opérateur",
		},
	},
}
