package phrase

// Duel message templates.
// Placeholders: {requestor}, {target}, {stake}, {winner}, {loser},
// {total_pot}, {extra_points}, {min_stake}.
const (
	DuelChallengeTarget = "You have been challenged to a duel by {requestor} for {stake} points. Type !accept to accept or !decline to decline."
	DuelChallengeSent   = "You have challenged {target} to a duel for {stake} points. The challenge expires in {expiry} seconds."
	DuelWin             = "{winner} won the duel vs {loser} and took home {extra_points} extra points! The pot was {total_pot} points."
	DuelExpiredTarget   = "The duel challenge from {requestor} has expired."
	DuelExpiredSender   = "Your duel challenge against {target} expired without a response."
	DuelDeclinedSender  = "{target} declined your duel challenge."
	DuelDeclinedTarget  = "You declined the duel challenge from {requestor}."
	DuelCancelled       = "You have cancelled your duel challenge against {target}."
	DuelCancelledTarget = "{requestor} has cancelled their duel challenge against you."
	DuelStakeTooLow     = "The minimum duel stake is {min_stake} points."
	DuelTargetInactive  = "{target} hasn't been active in chat recently, so they can't be challenged."
	DuelAlreadyPending  = "You already have an outstanding duel challenge. Cancel it with !cancelduel first."
	DuelTargetBusy      = "{target} already has a pending duel challenge."
	DuelCannotAfford    = "Either you or {target} can't afford that stake."
	DuelNoRequest       = "You have no active duel request."
	DuelNotChallenged   = "Nobody has challenged you to a duel."
	DuelUnknownUser     = "I don't know who {target} is."
	DuelInvalidStake    = "That stake isn't a valid number of points."
	DuelUsage           = "Usage: !duel <username> [stake]"
)

// Duel status templates, used when a user asks about pending challenges.
const (
	DuelStatusOutgoing = "You have challenged {target} to a duel for {stake} points."
	DuelStatusIncoming = "{requestor} has challenged you to a duel for {stake} points. Type !accept or !decline."
	DuelStatusNone     = "You have no pending duel challenges."
)

// Stats message templates.
// Placeholders: {username}, {duels_total}, {duels_won}, {win_rate},
// {current_streak}, {longest_streak}, {profit}.
const (
	DuelStatsSummary = "{username}: {duels_won}/{duels_total} duels won ({win_rate}%), streak {current_streak} (best {longest_streak}), net profit {profit} points."
	DuelStatsEmpty   = "{username} hasn't duelled anyone yet."
)

// Subscription and donation templates.
// Placeholders: {username}, {gifter}, {points}, {months}, {amount}.
const (
	SubPublicAnnounce    = "{username} just subscribed! They receive {points} points."
	SubResubAnnounce     = "{username} just subscribed for {months} months in a row! They receive {points} points."
	SubGiftAnnounce      = "{gifter} gifted a subscription to {username}! {gifter} receives {points} points."
	SubWhisperThanks     = "Thank you for subscribing! You have been given {points} points."
	SubGiftWhisperThanks = "Thank you for gifting a subscription! You have been given {points} points."
	DonationThanks       = "Thanks for donating ${amount}! You receive {points} points."
)
