package codes

// row 一行静态数据，按 locale 存放文案
type row struct {
	code   Code
	symbol string
	zh     string
	en     string
}

// ==================== 已映射返回码 ====================

var mappedRows = []row{
	{RetOK, "RET_OK", "正确", "success"},
	{RetOKNone, "RET_OK_NONE", "正确，无操作", "success, no operation"},
	{RetError, "RET_ERROR", "常规错误", "general error"},
	{RetInvalidData, "RET_INVALID_DATA", "数据无效", "invalid data"},
	{RetTechProblem, "RET_TECH_PROBLEM", "服务器遇到技术问题", "server technical problem"},
	{RetTooFrequent, "RET_TOO_FREQUENT", "访问过于频繁", "too frequent requests"},
	{RetMalfunction, "RET_MALFUNCTION", "非法操作", "malfunctional operation"},
	{RetAccountDisabled, "RET_ACCOUNT_DISABLED", "账户已被封禁", "account disabled"},
	{RetBadAccountInfo, "RET_BAD_ACCOUNT_INFO", "账户信息错误", "bad account info"},
	{RetTradeTimeout, "RET_TRADE_TIMEOUT", "交易超时", "trade timeout"},
	{RetTradeBadPrices, "RET_TRADE_BAD_PRICES", "无效的下单价格", "invalid prices"},
	{RetTradeBadStops, "RET_TRADE_BAD_STOPS", "无效的止损止盈", "invalid stops"},
	{RetTradeBadVolume, "RET_TRADE_BAD_VOLUME", "无效的下单量", "invalid volume"},
	{RetTradeMarketClosed, "RET_TRADE_MARKET_CLOSED", "市场已关闭", "market closed"},
	{RetTradeDisable, "RET_TRADE_DISABLE", "禁止交易", "trade disabled"},
	{RetTradeNoMoney, "RET_TRADE_NO_MONEY", "资金不足", "not enough money"},
	{RetTradePriceChanged, "RET_TRADE_PRICE_CHANGED", "价格已经变化", "price changed"},
	{RetTradeBrokerBusy, "RET_TRADE_BROKER_BUSY", "经纪商繁忙", "broker busy"},
	{RetTradeOrderLocked, "RET_TRADE_ORDER_LOCKED", "订单已被锁定，无法修改", "order locked"},
	{RetTradeLongOnly, "RET_TRADE_LONG_ONLY", "仅允许买单", "long positions only"},
	{RetTradeTooManyReq, "RET_TRADE_TOO_MANY_REQ", "同一客户端请求次数过多", "too many requests from one client"},
	{RetTradeAccepted, "RET_TRADE_ACCEPTED", "交易请求已被接受", "trade request accepted"},
	{RetTradeProcess, "RET_TRADE_PROCESS", "交易请求正在处理中", "trade request in process"},
	{RetTradeUserCancel, "RET_TRADE_USER_CANCEL", "交易请求被客户取消", "trade request cancelled by client"},
	{RetTradeModifyDenied, "RET_TRADE_MODIFY_DENIED", "无法修改订单", "order modification denied"},
	{RetTradeExpirationDenied, "RET_TRADE_EXPIRATION_DENIED", "不能使用订单有效期限", "order expiration denied"},
	{RetTradeTooManyOrders, "RET_TRADE_TOO_MANY_ORDERS", "订单数量过多", "too many orders"},
	{RetTradeHedgeProhibited, "RET_TRADE_HEDGE_PROHIBITED", "禁止对冲交易操作", "hedging prohibited"},
	{RetTradeProhibitedByFIFO, "RET_TRADE_PROHIBITED_BY_FIFO", "由于FIFO规则，无法进行交易", "prohibited by FIFO rule"},
}

// ==================== 保留返回码 ====================

// reservedRows 文案仅作记录，Resolve 不会返回这些文案
var reservedRows = []row{
	{RetOldVersion, "RET_OLD_VERSION", "客户端版本过旧", "old client version"},
	{RetNoConnect, "RET_NO_CONNECT", "无连接", "no connection"},
	{RetNotEnoughRights, "RET_NOT_ENOUGH_RIGHTS", "无所需权限", "not enough rights"},
	{RetGenerateKey, "RET_GENERATE_KEY", "需要发送公钥信息", "public key required"},
	{RetSecuritySession, "RET_SECURITY_SESSION", "安全会话启动", "security session started"},
	{RetPublicKeyMissing, "RET_PUBLIC_KEY_MISSING", "公钥信息缺失", "public key missing"},
	{RetTradeOffQuotes, "RET_TRADE_OFFQUOTES", "没有报价信息", "off quotes"},
	{RetTradeRequote, "RET_TRADE_REQUOTE", "重新要价", "requote"},
	{RetTradeContextBusy, "RET_TRADE_CONTEXT_BUSY", "交易上下文繁忙", "trade context busy"},
}

var fallbacks = map[Locale]string{
	LocaleZH: "服务器其他问题",
	LocaleEN: "other server problem",
}

// 以下映射在包初始化时构建，之后只读
var symbols, reservedSet, tables = buildTables()

func buildTables() (map[Code]string, map[Code]struct{}, map[Locale]map[Code]string) {
	syms := make(map[Code]string, len(mappedRows)+len(reservedRows))
	reserved := make(map[Code]struct{}, len(reservedRows))
	tbl := map[Locale]map[Code]string{
		LocaleZH: make(map[Code]string, len(mappedRows)),
		LocaleEN: make(map[Code]string, len(mappedRows)),
	}
	// 同一返回码只取第一条定义
	for _, r := range mappedRows {
		if _, dup := syms[r.code]; dup {
			continue
		}
		syms[r.code] = r.symbol
		tbl[LocaleZH][r.code] = r.zh
		tbl[LocaleEN][r.code] = r.en
	}
	for _, r := range reservedRows {
		if _, dup := syms[r.code]; dup {
			continue
		}
		syms[r.code] = r.symbol
		reserved[r.code] = struct{}{}
	}
	return syms, reserved, tbl
}

func (r row) text(locale Locale) string {
	if locale == LocaleEN {
		return r.en
	}
	return r.zh
}

func (r row) entry(locale Locale) ErrorCode {
	return ErrorCode{Numeric: int32(r.code), Symbol: r.symbol, Message: r.text(locale)}
}

// Entries 返回已映射返回码列表 (按返回码顺序)，供文档和目录发布使用
func Entries(locale Locale) []ErrorCode {
	locale = ParseLocale(string(locale))
	out := make([]ErrorCode, 0, len(mappedRows))
	for _, r := range mappedRows {
		out = append(out, r.entry(locale))
	}
	return out
}

// ReservedEntries 返回保留返回码及其预留文案
func ReservedEntries(locale Locale) []ErrorCode {
	locale = ParseLocale(string(locale))
	out := make([]ErrorCode, 0, len(reservedRows))
	for _, r := range reservedRows {
		out = append(out, r.entry(locale))
	}
	return out
}
