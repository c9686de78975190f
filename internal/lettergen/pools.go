package lettergen

// The letter's fixed frame. Lines 1, 5, 6, 7 never vary; line 5 and 6 are
// additionally enforced verbatim by letterlint.
const (
	openingLine = "十年後のわたしから、いまのあなたへ。"
	closingLine = "十年後のこの場所で、待ってるね。"
)

// strainedVocab is the small fixed set of words that make distress legible.
// At severity >= 3 the letter must contain at least one of them.
var strainedVocab = []string{"しんどい", "きつい", "ギリギリ", "余裕がない", "綱渡り"}

// deniedJoins are repetitive-ending patterns forbidden across the line 2 /
// line 3 boundary, checked on the plain concatenation of the two lines.
var deniedJoins = []string{
	"よ。でもね",
	"ね。でもね",
	"かな。でもね",
	"ね。それでも",
}

// severity bands: 0-1 calm, 2 mid, 3-4 hard.
const (
	bandCalm = 0
	bandMid  = 1
	bandHard = 2
)

func severityBand(severity int) int {
	switch {
	case severity <= 1:
		return bandCalm
	case severity == 2:
		return bandMid
	default:
		return bandHard
	}
}

// line2Pools holds the living-situation commentary, keyed by situation and
// severity band. Every hard-band pool carries at least one strained sentence
// and at least one without, so the severity substitution stays meaningful.
var line2Pools = map[Situation][3][]string{
	SituationSingle: {
		bandCalm: {
			"ひとりの時間を大事にしながら、暮らしはずいぶん整ったよ。",
			"自分のペースで暮らすコツが、だんだん身についてきたね。",
			"気ままなひとり暮らしも、積み重ねると強さになるんだ。",
			"部屋も心も、あの頃より少し広くなった気がするかな。",
		},
		bandMid: {
			"ひとり分の暮らしでも、油断すると財布はすぐ軽くなるね。",
			"使いどころを選ぶ練習を、あの頃から続けてきたよ。",
			"暮らしの帳尻を合わせるのは、正直まだ手探りだったんだ。",
		},
		bandHard: {
			"ひとりの暮らしは自由なぶん、やりくりは正直きつい時期だったよ。",
			"余裕がない月が続いて、ため息をついた夜もあったね。",
			"綱渡りみたいな月末を、何度も乗り越えてきたんだ。",
			"それでも、ひとりで立つ力は確かに育ったね。",
		},
	},
	SituationPair: {
		bandCalm: {
			"ふたりの暮らしは、想像よりずっと穏やかに回っているよ。",
			"家事も予定も分け合えば、日々はだいぶ軽くなるね。",
			"ふたりで囲む食卓が、いちばんの節約にもなったかな。",
		},
		bandMid: {
			"ふたり分の暮らしは、足並みをそろえるのに少し時間がかかったね。",
			"お互いの使い方のクセを知るところから始めたよ。",
			"話し合いの回数だけ、暮らしは少しずつ整っていったんだ。",
		},
		bandHard: {
			"ふたりでもやりくりがきつい月は、正直何度もあったよ。",
			"ギリギリの月末をふたりで笑い飛ばしたのを覚えているね。",
			"余裕がない時期こそ、支え合う力が試されたんだ。",
			"それでも、ふたりで決めたことは守り抜いたね。",
		},
	},
	SituationKids: {
		bandCalm: {
			"子どもの笑い声が増えて、家の中がずっとにぎやかだよ。",
			"家族が増えた分、毎日の段取りはうまくなったね。",
			"子どもと過ごす時間が、なによりの宝物になったかな。",
		},
		bandMid: {
			"子育ての出費は波があって、予定どおりにはいかないね。",
			"家族が増えるたび、暮らしの組み立て直しをしてきたよ。",
			"行事のたびに財布と相談する日々が続いたんだ。",
		},
		bandHard: {
			"子育てと家計の両立は、正直しんどい時期もあったよ。",
			"ギリギリの毎日でも、子どもの寝顔に救われたね。",
			"余裕がない中でも、家族の時間だけは削らなかったんだ。",
			"それでも、家族の笑顔だけは絶やさなかったね。",
		},
	},
}

// line3Pools holds the goal-progress commentary, keyed by the goal value or,
// for open-ended goals, by the inferred category label.
var line3Pools = map[string][3][]string{
	"entrepreneur": {
		bandCalm: {
			"あの小さな挑戦の芽は、いまでは立派な仕事になっているよ。",
			"自分の看板で働く朝は、思っていたより清々しいね。",
			"最初の一歩を早めに踏み出したのが効いたんだ。",
		},
		bandMid: {
			"事業の種まきは、地道な下ごしらえの連続だったね。",
			"本業のかたわら、小さく試すことから始めたよ。",
			"焦らず育てた芽が、ようやく形になってきたんだ。",
		},
		bandHard: {
			"開業までの道は、正直しんどい坂道だったよ。",
			"ギリギリのやりくりに頭を抱えた夜もあったね。",
			"余裕がない時期は、守りを固めることに徹したんだ。",
		},
	},
	"fire": {
		bandCalm: {
			"早めに退く準備は、静かに着々と進んでいるよ。",
			"働き方を選べる日が、少しずつ近づいているね。",
			"時間をなにより大事にする感覚が育ったんだ。",
		},
		bandMid: {
			"自由への貯えは、一直線には増えてくれないね。",
			"浮き沈みに慣れるまで、ずいぶん時間がかかったよ。",
			"それでも続けた積み重ねが、効いてきているんだ。",
		},
		bandHard: {
			"早めの自由までの道は、正直きつい区間が続いたよ。",
			"余裕がない月は、無理せず歩幅を縮めたね。",
			"綱渡りの時期を越えて、ようやく景色が変わったんだ。",
		},
	},
	"mortgage": {
		bandCalm: {
			"理想の住まいへの備えは、順調に育っているよ。",
			"間取りの切り抜きを眺めるゆとりも出てきたね。",
			"家族の帰る場所づくりは、着実に進んだんだ。",
		},
		bandMid: {
			"住まいの夢は大きいぶん、足取りはゆっくりだったね。",
			"背伸びしない計画に切り替えてから、気持ちが楽になったよ。",
			"少しずつでも、土台は固まってきたんだ。",
		},
		bandHard: {
			"住まいの夢までは、正直しんどい道のりだったよ。",
			"ギリギリの家計で備えを削った月もあったね。",
			"でもね、諦めずに積んだ分だけ土台は残ったんだ。",
		},
	},
	"overseas": {
		bandCalm: {
			"海の向こうの暮らしは、もう夢物語ではなくなったよ。",
			"地図を広げるたび、準備の手応えを感じられたね。",
			"言葉の練習も旅支度も、楽しみながら進んだんだ。",
		},
		bandMid: {
			"海外への準備は、思ったより回り道が多かったね。",
			"行き先を絞ってから、支度は一気に進んだよ。",
			"小さな積み重ねが、渡航の切符になっていくんだ。",
		},
		bandHard: {
			"海外の夢は遠くて、正直きつい時期が長かったよ。",
			"余裕がない中でも、地図だけは手放さなかったね。",
			"でもね、諦めの悪さがいちばんの味方だったんだ。",
		},
	},
	"travel": {
		bandCalm: {
			"行きたい場所のリストは、ひとつずつ線を引いて消しているよ。",
			"旅の計画を立てる時間そのものが、ご褒美になったね。",
			"次の旅支度は、もう半分できているんだ。",
		},
		bandMid: {
			"旅の夢は、日々のやりくりと順番待ちだったね。",
			"近場の小さな旅で、気持ちをつないできたよ。",
			"それでも旅心は消えずに残ったんだ。",
		},
		bandHard: {
			"旅どころではない、しんどい時期もあったよ。",
			"余裕がない月は、旅の本だけ眺めていたね。",
			"でもね、窓の外の空はいつでも旅の入り口だったんだ。",
		},
	},
	"career": {
		bandCalm: {
			"新しい働き方には、もうすっかり慣れたよ。",
			"あの決断が、いまの毎日をつくってくれたね。",
			"仕事の景色は、あの頃より広くなったんだ。",
		},
		bandMid: {
			"働き方を変えるのは、準備も覚悟も要ったね。",
			"小さな学び直しから、静かに始めたよ。",
			"回り道も、ぜんぶ地続きだったんだ。",
		},
		bandHard: {
			"転機の前後は、正直しんどい日が続いたよ。",
			"ギリギリの気力で机に向かった夜もあったね。",
			"でもね、あの踏ん張りが道を開いたんだ。",
		},
	},
	"home": {
		bandCalm: {
			"住まいの計画は、絵に描いた通りに進んでいるよ。",
			"帰りたくなる部屋が、ちゃんとできたね。",
			"暮らしの器は、時間をかけて育つんだ。",
		},
		bandMid: {
			"住まいの夢は、家計と相談しながらの歩みだったね。",
			"優先順位を決めてから、迷いが減ったよ。",
			"少しずつ、理想に近づいているんだ。",
		},
		bandHard: {
			"住まいの夢までは、余裕がない日々が続いたよ。",
			"しんどい時期は、模様替えで気分を変えたね。",
			"でもね、願いは手放さなかったんだ。",
		},
	},
	"health": {
		bandCalm: {
			"体を動かす習慣は、もう暮らしの一部だよ。",
			"朝の散歩が、いちばんの薬になったね。",
			"元気でいることが、なによりの宝なんだ。",
		},
		bandMid: {
			"体づくりは、さぼりと仲直りの繰り返しだったね。",
			"小さな習慣から、こつこつ積み直したよ。",
			"続けた分だけ、体は応えてくれるんだ。",
		},
		bandHard: {
			"体も家計も、しんどい時期が重なったよ。",
			"余裕がない日こそ、眠りだけは守ったね。",
			"でもね、歩き出せば体は軽くなるんだ。",
		},
	},
	"skill": {
		bandCalm: {
			"学び直しの成果が、仕事でも暮らしでも生きているよ。",
			"机に向かう習慣が、静かな自信になったね。",
			"覚えたことは、誰にも取られない宝物なんだ。",
		},
		bandMid: {
			"学びの時間は、暮らしの隙間から拾い集めたね。",
			"少しずつでも、ページは進んでいったよ。",
			"積み上げた分だけ、選べる道が増えるんだ。",
		},
		bandHard: {
			"学びと家計の両立は、正直きつい日々だったよ。",
			"ギリギリの時間でも、一行だけは読んだね。",
			"でもね、その一行が未来を変えたんだ。",
		},
	},
	"dream": {
		bandCalm: {
			"あの大きな夢は、いまも心の真ん中にあるよ。",
			"夢に向かう毎日が、暮らしの張りになったね。",
			"遠回りも、ぜんぶ物語の一部なんだ。",
		},
		bandMid: {
			"夢への道は、思ったより長い助走が要ったね。",
			"小さな一歩を、毎週ひとつ重ねたよ。",
			"助走の長さは、そのまま飛距離になるんだ。",
		},
		bandHard: {
			"夢を追う道は、正直しんどい時期が長かったよ。",
			"余裕がない日々でも、夢の火は消さなかったね。",
			"でもね、その火がいまの毎日を照らしているんだ。",
		},
	},
	"other": {
		bandCalm: {
			"あの願いごとは、ちゃんと形になりつつあるよ。",
			"書き留めた目標を、時々見返しては進んできたね。",
			"願いは言葉にすると、歩き出すんだ。",
		},
		bandMid: {
			"あの目標は、暮らしと折り合いながらの歩みだったね。",
			"できることから、順番に手をつけたよ。",
			"歩みは遅くても、向きは変えなかったんだ。",
		},
		bandHard: {
			"目標どころではない、しんどい時期もあったよ。",
			"ギリギリの毎日でも、願いは胸に残ったね。",
			"でもね、残った願いが道しるべになったんだ。",
		},
	},
}

// line4Table is the fixed 3-variant by 5-severity table for line 4. Each
// entry is exactly one sentence.
var line4Table = [3][5]string{
	{
		"いまの暮らし方は、十年後のわたしの誇りだよ。",
		"小さな見直しを足せば、もっと楽になるよ。",
		"立て直しの鍵は、固定の出費をひとつ減らすことだったよ。",
		"苦しい時期こそ、手放す勇気が効いたよ。",
		"どん底に見えた場所が、実は折り返し地点だったよ。",
	},
	{
		"いまの選び方を、どうかそのまま続けてね。",
		"ほんの少しの工夫で、景色は変わっていくね。",
		"迷ったら、使い道を三日だけ書き出してみてね。",
		"つらい月は、立ち止まる勇気も立派な前進だね。",
		"いちばん暗い夜にも、朝はちゃんと来たね。",
	},
	{
		"未来のわたしは、いまのあなたに感謝しているんだ。",
		"積み重ねは、静かに効いてくるんだ。",
		"仕組みをひとつ変えるだけで、流れは変わるんだ。",
		"踏ん張りどころは、長くは続かないんだ。",
		"あの暗がりを抜けた先に、いまの景色があるんだ。",
	},
}
