// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lgamma

import "github.com/ajroetker/go-xprec/xprec"

// anchorPair is a constant held as high + low, where high has a short
// significand and low is the residual. The two are always added to a result
// separately, low first, so their sum is never rounded to one DD.
type anchorPair struct {
	high xprec.DD
	low  xprec.DD
}

// rational is R(z) = N(z)/D(z). num holds N from degree 0 upward; den holds
// D without its leading coefficient, which is 1.
type rational struct {
	num []xprec.DD
	den []xprec.DD
}

// eval returns N(z) and D(z).
func (r rational) eval(z xprec.DD) (n, d xprec.DD) {
	return evalPoly(z, r.num), evalMonicPoly(z, r.den)
}

// coefficientSet is one minimax approximation of lgamma around center.
type coefficientSet struct {
	name string

	// center is the point the approximation is expanded around.
	center anchorPair

	// value is lgamma(center); zero at 1 and 2.
	value anchorPair

	// quadratic sets the form value + z^2 R(z) used at the minimum of
	// Gamma, rather than value + z R(z).
	quadratic bool

	r rational
}

func anchorAt(x float64) anchorPair {
	return anchorPair{high: xprec.FromFloat64(x)}
}

func dds(values ...string) []xprec.DD {
	out := make([]xprec.DD, len(values))
	for i, v := range values {
		out[i] = xprec.MustParse(v)
	}
	return out
}

// The rational approximations and anchor values in this file are Stephen L.
// Moshier's minimax fits for 113-bit arithmetic (Cephes, ISC license,
// Copyright (c) 2008 Stephen L. Moshier <steve@moshier.net>). They are kept as
// the published decimal strings and rounded to DD once at init.
//
// Numerators list coefficients from degree 0 upward. Denominators omit the
// leading coefficient, which is 1.

var (
	// maxLgm is the largest argument whose log-Gamma is finite in DD.
	maxLgm = xprec.FromFloat64(2.5599833278516383e305)

	// lnSqrt2Pi is log(sqrt(2*pi)).
	lnSqrt2Pi = xprec.MustParse("9.1893853320467274178032973640561763986140E-1")

	// asymptotic is the Stirling correction R(1/x^2) for x >= 13.5.
	asymptotic = dds(
		"8.333333333333333333333333333310437112111E-2",
		"-2.777777777777777777777774789556228296902E-3",
		"7.936507936507936507795933938448586499183E-4",
		"-5.952380952380952041799269756378148574045E-4",
		"8.417508417507928904209891117498524452523E-4",
		"-1.917526917481263997778542329739806086290E-3",
		"6.410256381217852504446848671499409919280E-3",
		"-2.955064066900961649768101034477363301626E-2",
		"1.796402955865634243663453415388336954675E-1",
		"-1.391522089007758553455753477688592767741E0",
		"1.326130089598399157988112385013829305510E1",
		"-1.420412699593782497803472576479997819149E2",
		"1.218058922427762808938869872528846787020E3",
	)
)

// lgamma(13+z) = lgamma(13) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near13 = &coefficientSet{
	name:   "near13",
	center: anchorAt(13),
	value: anchorPair{
		high: xprec.MustParse("1.9987213134765625E1"),
		low:  xprec.MustParse("1.3608962611495173623870550785125024484248E-6"),
	},
	r: rational{
		num: dds(
			"8.591478354823578150238226576156275285700E11",
			"2.347931159756482741018258864137297157668E11",
			"2.555408396679352028680662433943000804616E10",
			"1.408581709264464345480765758902967123937E9",
			"4.126759849752613822953004114044451046321E7",
			"6.133298899622688505854211579222889943778E5",
			"3.929248056293651597987893340755876578072E3",
			"6.850783280018706668924952057996075215223E0",
		),
		den: dds(
			"3.401225382297342302296607039352935541669E11",
			"8.756765276918037910363513243563234551784E10",
			"8.873913342866613213078554180987647243903E9",
			"4.483797255342763263361893016049310017973E8",
			"1.178186288833066430952276702931512870676E7",
			"1.519928623743264797939103740132278337476E5",
			"7.989298844938119228411117593338850892311E2",
		),
	},
}

// lgamma(12+z) = lgamma(12) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near12 = &coefficientSet{
	name:   "near12",
	center: anchorAt(12),
	value: anchorPair{
		high: xprec.MustParse("1.75023040771484375E1"),
		low:  xprec.MustParse("3.7687254483392876529072161996717039575982E-6"),
	},
	r: rational{
		num: dds(
			"4.709859662695606986110997348630997559137E11",
			"1.398713878079497115037857470168777995230E11",
			"1.654654931821564315970930093932954900867E10",
			"9.916279414876676861193649489207282144036E8",
			"3.159604070526036074112008954113411389879E7",
			"5.109099197547205212294747623977502492861E5",
			"3.563054878276102790183396740969279826988E3",
			"6.769610657004672719224614163196946862747E0",
		),
		den: dds(
			"1.928167007860968063912467318985802726613E11",
			"5.383198282277806237247492369072266389233E10",
			"5.915693215338294477444809323037871058363E9",
			"3.241438287570196713148310560147925781342E8",
			"9.236680081763754597872713592701048455890E6",
			"1.292246897881650919242713651166596478850E5",
			"7.366532445427159272584194816076600211171E2",
		),
	},
}

// lgamma(11+z) = lgamma(11) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near11 = &coefficientSet{
	name:   "near11",
	center: anchorAt(11),
	value: anchorPair{
		high: xprec.MustParse("1.5104400634765625E1"),
		low:  xprec.MustParse("1.1938309890295225709329251070371882250744E-5"),
	},
	r: rational{
		num: dds(
			"2.446960438029415837384622675816736622795E11",
			"7.955444974446413315803799763901729640350E10",
			"1.030555327949159293591618473447420338444E10",
			"6.765022131195302709153994345470493334946E8",
			"2.361892792609204855279723576041468347494E7",
			"4.186623629779479136428005806072176490125E5",
			"3.202506022088912768601325534149383594049E3",
			"6.681356101133728289358838690666225691363E0",
		),
		den: dds(
			"1.040483786179428590683912396379079477432E11",
			"3.172251138489229497223696648369823779729E10",
			"3.806961885984850433709295832245848084614E9",
			"2.278070344022934913730015420611609620171E8",
			"7.089478198662651683977290023829391596481E6",
			"1.083246385105903533237139380509590158658E5",
			"6.744420991491385145885727942219463243597E2",
		),
	},
}

// lgamma(10+z) = lgamma(10) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near10 = &coefficientSet{
	name:   "near10",
	center: anchorAt(10),
	value: anchorPair{
		high: xprec.MustParse("1.280181884765625E1"),
		low:  xprec.MustParse("8.6324252196112077178745667061642811492557E-6"),
	},
	r: rational{
		num: dds(
			"-1.239059737177249934158597996648808363783E14",
			"-4.725899566371458992365624673357356908719E13",
			"-7.283906268647083312042059082837754850808E12",
			"-5.802855515464011422171165179767478794637E11",
			"-2.532349691157548788382820303182745897298E10",
			"-5.884260178023777312587193693477072061820E8",
			"-6.437774864512125749845840472131829114906E6",
			"-2.350975266781548931856017239843273049384E4",
		),
		den: dds(
			"-5.502645997581822567468347817182347679552E13",
			"-1.970266640239849804162284805400136473801E13",
			"-2.819677689615038489384974042561531409392E12",
			"-2.056105863694742752589691183194061265094E11",
			"-8.053670086493258693186307810815819662078E9",
			"-1.632090155573373286153427982504851867131E8",
			"-1.483575879240631280658077826889223634921E6",
			"-4.002806669713232271615885826373550502510E3",
		),
	},
}

// lgamma(9+z) = lgamma(9) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near9 = &coefficientSet{
	name:   "near9",
	center: anchorAt(9),
	value: anchorPair{
		high: xprec.MustParse("1.06045989990234375E1"),
		low:  xprec.MustParse("3.9037218127284172274007216547549861681400E-6"),
	},
	r: rational{
		num: dds(
			"-4.936332264202687973364500998984608306189E13",
			"-2.101372682623700967335206138517766274855E13",
			"-3.615893404644823888655732817505129444195E12",
			"-3.217104993800878891194322691860075472926E11",
			"-1.568465330337375725685439173603032921399E10",
			"-4.073317518162025744377629219101510217761E8",
			"-4.983232096406156139324846656819246974500E6",
			"-2.036280038903695980912289722995505277253E4",
		),
		den: dds(
			"-2.306006080437656357167128541231915480393E13",
			"-9.183606842453274924895648863832233799950E12",
			"-1.461857965935942962087907301194381010380E12",
			"-1.185728254682789754150068652663124298303E11",
			"-5.166285094703468567389566085480783070037E9",
			"-1.164573656694603024184768200787835094317E8",
			"-1.177343939483908678474886454113163527909E6",
			"-3.529391059783109732159524500029157638736E3",
		),
	},
}

// lgamma(8+z) = lgamma(8) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near8 = &coefficientSet{
	name:   "near8",
	center: anchorAt(8),
	value: anchorPair{
		high: xprec.MustParse("8.525146484375E0"),
		low:  xprec.MustParse("1.4876690414300165531036347125050759667737E-5"),
	},
	r: rational{
		num: dds(
			"6.600775438203423546565361176829139703289E11",
			"3.406361267593790705240802723914281025800E11",
			"7.222460928505293914746983300555538432830E10",
			"8.102984106025088123058747466840656458342E9",
			"5.157620015986282905232150979772409345927E8",
			"1.851445288272645829028129389609068641517E7",
			"3.489261702223124354745894067468953756656E5",
			"2.892095396706665774434217489775617756014E3",
			"6.596977510622195827183948478627058738034E0",
		),
		den: dds(
			"3.274776546520735414638114828622673016920E11",
			"1.581811207929065544043963828487733970107E11",
			"3.108725655667825188135393076860104546416E10",
			"3.193055010502912617128480163681842165730E9",
			"1.830871482669835106357529710116211541839E8",
			"5.790862854275238129848491555068073485086E6",
			"9.305213264307921522842678835618803553589E4",
			"6.216974105861848386918949336819572333622E2",
		),
	},
}

// lgamma(7+z) = lgamma(7) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near7 = &coefficientSet{
	name:   "near7",
	center: anchorAt(7),
	value: anchorPair{
		high: xprec.MustParse("6.5792388916015625E0"),
		low:  xprec.MustParse("1.2320408538495060178292903945321122583007E-5"),
	},
	r: rational{
		num: dds(
			"2.065019306969459407636744543358209942213E11",
			"1.226919919023736909889724951708796532847E11",
			"2.996157990374348596472241776917953749106E10",
			"3.873001919306801037344727168434909521030E9",
			"2.841575255593761593270885753992732145094E8",
			"1.176342515359431913664715324652399565551E7",
			"2.558097039684188723597519300356028511547E5",
			"2.448525238332609439023786244782810774702E3",
			"6.460280377802030953041566617300902020435E0",
		),
		den: dds(
			"1.102646614598516998880874785339049304483E11",
			"6.099297512712715445879759589407189290040E10",
			"1.372898136289611312713283201112060238351E10",
			"1.615306270420293159907951633566635172343E9",
			"1.061114435798489135996614242842561967459E8",
			"3.845638971184305248268608902030718674691E6",
			"7.081730675423444975703917836972720495507E4",
			"5.423122582741398226693137276201344096370E2",
		),
	},
}

// lgamma(6+z) = lgamma(6) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near6 = &coefficientSet{
	name:   "near6",
	center: anchorAt(6),
	value: anchorPair{
		high: xprec.MustParse("4.7874908447265625E0"),
		low:  xprec.MustParse("8.9805548349424770093452324304839959231517E-7"),
	},
	r: rational{
		num: dds(
			"-3.538412754670746879119162116819571823643E13",
			"-2.613432593406849155765698121483394257148E13",
			"-8.020670732770461579558867891923784753062E12",
			"-1.322227822931250045347591780332435433420E12",
			"-1.262809382777272476572558806855377129513E11",
			"-7.015006277027660872284922325741197022467E9",
			"-2.149320689089020841076532186783055727299E8",
			"-3.167210585700002703820077565539658995316E6",
			"-1.576834867378554185210279285358586385266E4",
		),
		den: dds(
			"-2.073955870771283609792355579558899389085E13",
			"-1.421592856111673959642750863283919318175E13",
			"-4.012134994918353924219048850264207074949E12",
			"-6.013361045800992316498238470888523722431E11",
			"-5.145382510136622274784240527039643430628E10",
			"-2.510575820013409711678540476918249524123E9",
			"-6.564058379709759600836745035871373240904E7",
			"-7.861511116647120540275354855221373571536E5",
			"-2.821943442729620524365661338459579270561E3",
		),
	},
}

// lgamma(5+z) = lgamma(5) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near5 = &coefficientSet{
	name:   "near5",
	center: anchorAt(5),
	value: anchorPair{
		high: xprec.MustParse("3.17803955078125E0"),
		low:  xprec.MustParse("1.4279566695619646941601297055408873990961E-5"),
	},
	r: rational{
		num: dds(
			"2.010952885441805899580403215533972172098E11",
			"1.916132681242540921354921906708215338584E11",
			"7.679102403710581712903937970163206882492E10",
			"1.680514903671382470108010973615268125169E10",
			"2.181011222911537259440775283277711588410E9",
			"1.705361119398837808244780667539728356096E8",
			"7.792391565652481864976147945997033946360E6",
			"1.910741381027985291688667214472560023819E5",
			"2.088138241893612679762260077783794329559E3",
			"6.330318119566998299106803922739066556550E0",
		),
		den: dds(
			"1.335189758138651840605141370223112376176E11",
			"1.174130445739492885895466097516530211283E11",
			"4.308006619274572338118732154886328519910E10",
			"8.547402888692578655814445003283720677468E9",
			"9.934628078575618309542580800421370730906E8",
			"6.847107420092173812998096295422311820672E7",
			"2.698552646016599923609773122139463150403E6",
			"5.526516251532464176412113632726150253215E4",
			"4.772343321713697385780533022595450486932E2",
		),
	},
}

// lgamma(4+z) = lgamma(4) + z N(z)/D(z) for -0.5 <= z <= 0.5.
var near4 = &coefficientSet{
	name:   "near4",
	center: anchorAt(4),
	value: anchorPair{
		high: xprec.MustParse("1.791748046875E0"),
		low:  xprec.MustParse("1.1422353055000812477358380702272722990692E-5"),
	},
	r: rational{
		num: dds(
			"-1.026583408246155508572442242188887829208E13",
			"-1.306476685384622809290193031208776258809E13",
			"-7.051088602207062164232806511992978915508E12",
			"-2.100849457735620004967624442027793656108E12",
			"-3.767473790774546963588549871673843260569E11",
			"-4.156387497364909963498394522336575984206E10",
			"-2.764021460668011732047778992419118757746E9",
			"-1.036617204107109779944986471142938641399E8",
			"-1.895730886640349026257780896972598305443E6",
			"-1.180509051468390914200720003907727988201E4",
		),
		den: dds(
			"-8.172669122056002077809119378047536240889E12",
			"-9.477592426087986751343695251801814226960E12",
			"-4.629448850139318158743900253637212801682E12",
			"-1.237965465892012573255370078308035272942E12",
			"-1.971624313506929845158062177061297598956E11",
			"-1.905434843346570533229942397763361493610E10",
			"-1.089409357680461419743730978512856675984E9",
			"-3.416703082301143192939774401370222822430E7",
			"-4.981791914177103793218433195857635265295E5",
			"-2.192507743896742751483055798411231453733E3",
		),
	},
}

// lgamma(3+z) = lgamma(3) + z N(z)/D(z) for -0.25 <= z <= 0.5.
var near3 = &coefficientSet{
	name:   "near3",
	center: anchorAt(3),
	value: anchorPair{
		high: xprec.MustParse("6.93145751953125E-1"),
		low:  xprec.MustParse("1.4286068203094172321214581765680755001344E-6"),
	},
	r: rational{
		num: dds(
			"-4.813901815114776281494823863935820876670E11",
			"-8.425592975288250400493910291066881992620E11",
			"-6.228685507402467503655405482985516909157E11",
			"-2.531972054436786351403749276956707260499E11",
			"-6.170200796658926701311867484296426831687E10",
			"-9.211477458528156048231908798456365081135E9",
			"-8.251806236175037114064561038908691305583E8",
			"-4.147886355917831049939930101151160447495E7",
			"-1.010851868928346082547075956946476932162E6",
			"-8.333374463411801009783402800801201603736E3",
		),
		den: dds(
			"-5.216713843111675050627304523368029262450E11",
			"-8.014292925418308759369583419234079164391E11",
			"-5.180106858220030014546267824392678611990E11",
			"-1.830406975497439003897734969120997840011E11",
			"-3.845274631904879621945745960119924118925E10",
			"-4.891033385370523863288908070309417710903E9",
			"-3.670172254411328640353855768698287474282E8",
			"-1.505316381525727713026364396635522516989E7",
			"-2.856327162923716881454613540575964890347E5",
			"-1.622140448015769906847567212766206894547E3",
		),
	},
}

// lgamma(2.5+z) = lgamma(2.5) + z N(z)/D(z) for -0.125 <= z <= 0.25.
var near2r5 = &coefficientSet{
	name:   "near2.5",
	center: anchorAt(2.5),
	value: anchorPair{
		high: xprec.MustParse("2.8466796875E-1"),
		low:  xprec.MustParse("1.4901722919159632494669682701924320137696E-5"),
	},
	r: rational{
		num: dds(
			"-4.676454313888335499356699817678862233205E9",
			"-9.361888347911187924389905984624216340639E9",
			"-7.695353600835685037920815799526540237703E9",
			"-3.364370100981509060441853085968900734521E9",
			"-8.449902011848163568670361316804900559863E8",
			"-1.225249050950801905108001246436783022179E8",
			"-9.732972931077110161639900388121650470926E6",
			"-3.695711763932153505623248207576425983573E5",
			"-4.717341584067827676530426007495274711306E3",
		),
		den: dds(
			"-6.650657966618993679456019224416926875619E9",
			"-1.099511409330635807899718829033488771623E10",
			"-7.482546968307837168164311101447116903148E9",
			"-2.702967190056506495988922973755870557217E9",
			"-5.570008176482922704972943389590409280950E8",
			"-6.536934032192792470926310043166993233231E7",
			"-4.101991193844953082400035444146067511725E6",
			"-1.174082735875715802334430481065526664020E5",
			"-9.932840389994157592102947657277692978511E2",
		),
	},
}

// lgamma(2+z) = z N(z)/D(z) for -0.125 <= z <= 0.375.
var near2 = &coefficientSet{
	name:   "near2",
	center: anchorAt(2),
	r: rational{
		num: dds(
			"-3.716661929737318153526921358113793421524E9",
			"-1.138816715030710406922819131397532331321E10",
			"-1.421017419363526524544402598734013569950E10",
			"-9.510432842542519665483662502132010331451E9",
			"-3.747528562099410197957514973274474767329E9",
			"-8.923565763363912474488712255317033616626E8",
			"-1.261396653700237624185350402781338231697E8",
			"-9.918402520255661797735331317081425749014E6",
			"-3.753996255897143855113273724233104768831E5",
			"-4.778761333044147141559311805999540765612E3",
		),
		den: dds(
			"-8.790916836764308497770359421351673950111E9",
			"-2.023108608053212516399197678553737477486E10",
			"-1.958067901852022239294231785363504458367E10",
			"-1.035515043621003101254252481625188704529E10",
			"-3.253884432621336737640841276619272224476E9",
			"-6.186383531162456814954947669274235815544E8",
			"-6.932557847749518463038934953605969951466E7",
			"-4.240731768287359608773351626528479703758E6",
			"-1.197343995089189188078944689846348116630E5",
			"-1.004622911670588064824904487064114090920E3",
		),
	},
}

// lgamma(1.75+z) = lgamma(1.75) + z N(z)/D(z) for |z| <= 0.125.
var near1r75 = &coefficientSet{
	name:   "near1.75",
	center: anchorAt(1.75),
	value: anchorPair{
		high: xprec.MustParse("-8.441162109375E-2"),
		low:  xprec.MustParse("1.0500073264444042213965868602268256157604E-5"),
	},
	r: rational{
		num: dds(
			"-5.221061693929833937710891646275798251513E7",
			"-2.052466337474314812817883030472496436993E8",
			"-2.952718275974940270675670705084125640069E8",
			"-2.132294039648116684922965964126389017840E8",
			"-8.554103077186505960591321962207519908489E7",
			"-1.940250901348870867323943119132071960050E7",
			"-2.379394147112756860769336400290402208435E6",
			"-1.384060879999526222029386539622255797389E5",
			"-2.698453601378319296159355612094598695530E3",
		),
		den: dds(
			"-2.109754689501705828789976311354395393605E8",
			"-5.036651829232895725959911504899241062286E8",
			"-4.954234699418689764943486770327295098084E8",
			"-2.589558042412676610775157783898195339410E8",
			"-7.731476117252958268044969614034776883031E7",
			"-1.316721702252481296030801191240867486965E7",
			"-1.201296501404876774861190604303728810836E6",
			"-5.007966406976106636109459072523610273928E4",
			"-6.155817990560743422008969155276229018209E2",
		),
	},
}

// lgamma(x0+z) = y0 + z^2 N(z)/D(z) around the minimum x0 of Gamma, for 1.375 <= x0+z <= 1.625.
var minimum = &coefficientSet{
	name:   "minimum",
	center: anchorPair{
		high: xprec.MustParse("1.4616241455078125"),
		low:  xprec.MustParse("7.9994605498412626595423257213002588621246E-6"),
	},
	value: anchorPair{
		high: xprec.MustParse("-1.21490478515625E-1"),
		low:  xprec.MustParse("4.1879797753919044854428223084178486438269E-6"),
	},
	quadratic: true,
	r: rational{
		num: dds(
			"6.827103657233705798067415468881313128066E5",
			"1.910041815932269464714909706705242148108E6",
			"2.194344176925978377083808566251427771951E6",
			"1.332921400100891472195055269688876427962E6",
			"4.589080973377307211815655093824787123508E5",
			"8.900334161263456942727083580232613796141E4",
			"9.053840838306019753209127312097612455236E3",
			"4.053367147553353374151852319743594873771E2",
			"5.040631576303952022968949605613514584950E0",
		),
		den: dds(
			"1.411036368843183477558773688484699813355E6",
			"4.378121767236251950226362443134306184849E6",
			"5.682322855631723455425929877581697918168E6",
			"3.999065731556977782435009349967042222375E6",
			"1.653651390456781293163585493620758410333E6",
			"4.067774359067489605179546964969435858311E5",
			"5.741463295366557346748361781768833633256E4",
			"4.226404539738182992856094681115746692030E3",
			"1.316980975410327975566999780608618774469E2",
		),
	},
}

// lgamma(1.25+z) = lgamma(1.25) + z N(z)/D(z) for |z| <= 0.125.
var near1r25 = &coefficientSet{
	name:   "near1.25",
	center: anchorAt(1.25),
	value: anchorPair{
		high: xprec.MustParse("-9.82818603515625E-2"),
		low:  xprec.MustParse("1.0023929749338536146197303364159774377296E-5"),
	},
	r: rational{
		num: dds(
			"-9.054787275312026472896002240379580536760E4",
			"-8.685076892989927640126560802094680794471E4",
			"2.797898965448019916967849727279076547109E5",
			"6.175520827134342734546868356396008898299E5",
			"5.179626599589134831538516906517372619641E5",
			"2.253076616239043944538380039205558242161E5",
			"5.312653119599957228630544772499197307195E4",
			"6.434329437514083776052669599834938898255E3",
			"3.385414416983114598582554037612347549220E2",
			"4.907821957946273805080625052510832015792E0",
		),
		den: dds(
			"3.980939377333448005389084785896660309000E5",
			"1.429634893085231519692365775184490465542E6",
			"2.145438946455476062850151428438668234336E6",
			"1.743786661358280837020848127465970357893E6",
			"8.316364251289743923178092656080441655273E5",
			"2.355732939106812496699621491135458324294E5",
			"3.822267399625696880571810137601310855419E4",
			"3.228463206479133236028576845538387620856E3",
			"1.152133170470059555646301189220117965514E2",
		),
	},
}

// lgamma(1+z) = z N(z)/D(z) for 0 <= z <= 0.125.
var near1 = &coefficientSet{
	name:   "near1",
	center: anchorAt(1),
	r: rational{
		num: dds(
			"-9.987560186094800756471055681088744738818E3",
			"-2.506039379419574361949680225279376329742E4",
			"-1.386770737662176516403363873617457652991E4",
			"1.439445846078103202928677244188837130744E4",
			"2.159612048879650471489449668295139990693E4",
			"1.047439813638144485276023138173676047079E4",
			"2.250316398054332592560412486630769139961E3",
			"1.958510425467720733041971651126443864041E2",
			"4.516830313569454663374271993200291219855E0",
		),
		den: dds(
			"1.730299573175751778863269333703788214547E4",
			"6.807080914851328611903744668028014678148E4",
			"1.090071629101496938655806063184092302439E5",
			"9.124354356415154289343303999616003884080E4",
			"4.262071638655772404431164427024003253954E4",
			"1.096981664067373953673982635805821283581E4",
			"1.431229503796575892151252708527595787588E3",
			"7.734110684303689320830401788262295992921E1",
		),
	},
}

// lgamma(1+z) = z N(z)/D(z) for -0.125 <= z <= 0.
var below1 = &coefficientSet{
	name:   "below1",
	center: anchorAt(1),
	r: rational{
		num: dds(
			"4.441379198241760069548832023257571176884E5",
			"1.273072988367176540909122090089580368732E6",
			"9.732422305818501557502584486510048387724E5",
			"-5.040539994443998275271644292272870348684E5",
			"-1.208719055525609446357448132109723786736E6",
			"-7.434275365370936547146540554419058907156E5",
			"-2.075642969983377738209203358199008185741E5",
			"-2.565534860781128618589288075109372218042E4",
			"-1.032901669542994124131223797515913955938E3",
		),
		den: dds(
			"-7.694488331323118759486182246005193998007E5",
			"-3.301918855321234414232308938454112213751E6",
			"-5.856830900232338906742924836032279404702E6",
			"-5.540672519616151584486240871424021377540E6",
			"-3.006530901041386626148342989181721176919E6",
			"-9.350378280513062139466966374330795935163E5",
			"-1.566179100031063346901755685375732739511E5",
			"-1.205016539620260779274902967231510804992E4",
			"-2.724583156305709733221564484006088794284E2",
		),
	},
}
