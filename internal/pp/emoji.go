package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars    Emoji = "📖" // reading configuration
	EmojiConfig     Emoji = "🔧" // showing configuration
	EmojiInternet   Emoji = "🌐" // listening and network addresses
	EmojiPrivileges Emoji = "🥷" // /privileges
	EmojiMute       Emoji = "🔇" // quiet mode
	EmojiDisabled   Emoji = "🚫" // feature is disabled
	EmojiDatabase   Emoji = "💾" // opening or writing the host store

	EmojiCreateRecord Emoji = "🐣" // registering a new host
	EmojiUpdateRecord Emoji = "📡" // updating DNS records
	EmojiDeleteRecord Emoji = "💀" // deleting stale DNS records
	EmojiRehash       Emoji = "🔑" // upgrading stored password hashes
	EmojiRequest      Emoji = "📨" // incoming update requests

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📣" // sending notifications
	EmojiSignal       Emoji = "🚨" // catching signals
	EmojiAlreadyDone  Emoji = "🤷" // DNS records were already up to date
	EmojiNow          Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm        Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiBye          Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // hints
	EmojiDenied      Emoji = "🔒" // rejected credentials
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
