package mahjong

// Rule 对局规则配置
type Rule struct {
	InitialScore   int32 // 起始分
	RiichiCost     int32 // 立直供托
	RiichiMinScore int32 // 立直所需最低分
	HonbaRonPay    int32 // 每本场荣和加点
	HonbaTsumoPay  int32 // 每本场自摸时每家加点
	TenpaiPot      int32 // 流局罚符总额
	UseRedFives    bool  // 是否使用赤五
	MaxDoraShown   int   // 宝牌指示牌上限
}

func NewRule() *Rule {
	return &Rule{
		InitialScore:   25000,
		RiichiCost:     1000,
		RiichiMinScore: 1000,
		HonbaRonPay:    300,
		HonbaTsumoPay:  100,
		TenpaiPot:      3000,
		UseRedFives:    true,
		MaxDoraShown:   4,
	}
}
